// File: lixenwraith/property/builder.go
package property

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// ValidatorFunc defines the signature for a function that can validate a Snapshot.
// It receives the fully loaded snapshot and should return an error if validation fails.
type ValidatorFunc func(s *Snapshot) error

// Builder provides a fluent interface for building property snapshots
type Builder struct {
	opts       LoadOptions
	defaults   Properties
	file       string
	args       []string
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new snapshot builder reading os.Args[1:] by default
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultLoadOptions(),
		defaults:   make(Properties),
		args:       os.Args[1:],
		validators: make([]ValidatorFunc, 0),
	}
}

// WithDefaults adds default values, the lowest precedence source
func (b *Builder) WithDefaults(defaults map[string]string) *Builder {
	for k, v := range defaults {
		b.defaults[k] = v
	}
	return b
}

// WithDefault adds a single default value
func (b *Builder) WithDefault(name, value string) *Builder {
	if name == "" {
		b.err = errors.Join(b.err, errors.New("default property name cannot be empty"))
		return b
	}
	b.defaults[name] = value
	return b
}

// WithFile sets the properties file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithFormat forces the properties file format
func (b *Builder) WithFormat(format string) *Builder {
	switch format {
	case "", "auto", FormatProperties, FormatTOML, FormatYAML, FormatJSON:
		b.opts.Format = format
	default:
		b.err = errors.Join(b.err, fmt.Errorf("unsupported file format %q", format))
	}
	return b
}

// WithArgs sets the command-line arguments
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithSources sets the precedence order for property sources
func (b *Builder) WithSources(sources ...Source) *Builder {
	b.opts.Sources = sources
	return b
}

// WithLogger sets the logger for load diagnostics
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.opts.Logger = &logger
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// WithRequired adds a validator that fails when any of names is absent or blank
func (b *Builder) WithRequired(names ...string) *Builder {
	return b.WithValidator(func(s *Snapshot) error {
		return s.Require(names...)
	})
}

// Build loads all sources and returns the merged snapshot.
// ErrConfigNotFound is returned alongside a usable snapshot.
func (b *Builder) Build() (*Snapshot, error) {
	if b.err != nil {
		return nil, b.err
	}

	snap, loadErr := Load(b.file, b.args, b.defaults, b.opts)
	if loadErr != nil && !errors.Is(loadErr, ErrConfigNotFound) {
		return nil, loadErr
	}
	if snap == nil {
		return nil, loadErr
	}

	for _, validator := range b.validators {
		if err := validator(snap); err != nil {
			return nil, fmt.Errorf("property validation failed: %w", err)
		}
	}

	// ErrConfigNotFound or nil
	return snap, loadErr
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Snapshot {
	snap, err := b.Build()
	if err != nil {
		// A missing file is not fatal, the snapshot still has CLI and default values
		if !errors.Is(err, ErrConfigNotFound) {
			panic(fmt.Sprintf("property build failed: %v", err))
		}
	}
	return snap
}

// BuildAndScan builds and decodes the section at basePath into target
func (b *Builder) BuildAndScan(basePath string, target any) error {
	snap, err := b.Build()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return err
	}

	if err := snap.Scan(basePath, target); err != nil {
		return fmt.Errorf("failed to scan properties into target: %w", err)
	}

	// ErrConfigNotFound or nil
	return err
}
