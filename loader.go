// FILE: lixenwraith/property/loader.go
package property

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/magiconair/properties"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Source represents a property source, used to define load precedence
type Source string

const (
	// SourceDefault represents caller-supplied default values
	SourceDefault Source = "default"
	// SourceFile represents values loaded from a properties file
	SourceFile Source = "file"
	// SourceCLI represents project properties given on the command line
	SourceCLI Source = "cli"
)

// File formats understood by the loader
const (
	FormatProperties = "properties"
	FormatTOML       = "toml"
	FormatYAML       = "yaml"
	FormatJSON       = "json"
)

// LoadOptions configures how properties are loaded from multiple sources
type LoadOptions struct {
	// Sources defines the precedence order (first = highest priority)
	// Default: [SourceCLI, SourceFile, SourceDefault]
	Sources []Source

	// Format forces the file format; empty or "auto" detects it
	Format string

	// Logger receives load diagnostics; the zero value logs nothing
	Logger *zerolog.Logger
}

// DefaultLoadOptions returns the standard load options
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Sources: []Source{SourceCLI, SourceFile, SourceDefault},
	}
}

func (o LoadOptions) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// Load merges the file at filePath, the command-line args and defaults according
// to opts.Sources. A missing file is reported as ErrConfigNotFound together with a
// usable snapshot; every other failure is fatal.
func Load(filePath string, args []string, defaults Properties, opts LoadOptions) (*Snapshot, error) {
	log := opts.logger()
	if len(opts.Sources) == 0 {
		opts.Sources = DefaultLoadOptions().Sources
	}

	layers := make(map[Source]Properties, len(opts.Sources))
	var loadErrors []error

	for _, source := range opts.Sources {
		switch source {
		case SourceDefault:
			layers[SourceDefault] = defaults.Clone()

		case SourceFile:
			if filePath == "" {
				continue
			}
			fileProps, err := LoadFile(filePath, opts.Format)
			if err != nil {
				if errors.Is(err, ErrConfigNotFound) {
					log.Warn().
						Str("path", filePath).
						Str("source", string(SourceFile)).
						Msg("properties file not found, continuing without it")
					loadErrors = append(loadErrors, err)
					continue
				}
				return nil, err
			}
			log.Debug().
				Str("path", filePath).
				Int("count", len(fileProps)).
				Str("source", string(SourceFile)).
				Msg("loaded properties file")
			layers[SourceFile] = fileProps

		case SourceCLI:
			cliProps, err := parseArgs(args)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrCLIParse, err)
			}
			log.Debug().
				Int("count", len(cliProps)).
				Str("source", string(SourceCLI)).
				Msg("parsed command-line properties")
			layers[SourceCLI] = cliProps

		default:
			return nil, fmt.Errorf("unknown property source %q", source)
		}
	}

	return newSnapshot(layers, opts.Sources), errors.Join(loadErrors...)
}

// LoadFile reads a properties file into a flat property set
func LoadFile(path, format string) (Properties, error) {
	fileData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read properties file '%s': %w", path, err)
	}

	if format == "" || format == "auto" {
		format = detectFileFormat(path)
		if format == "" {
			format = detectFormatFromContent(fileData)
		}
	}

	props, err := parseFileData(fileData, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s properties file '%s': %w", format, path, err)
	}
	return props, nil
}

// parseFileData decodes data in the given format into a flat property set
func parseFileData(data []byte, format string) (Properties, error) {
	switch format {
	case FormatProperties:
		loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
		p, err := loader.LoadBytes(data)
		if err != nil {
			return nil, err
		}
		return Properties(p.Map()), nil

	case FormatTOML:
		return flattenTOML(data)

	case FormatYAML:
		return flattenYAML(data)

	case FormatJSON:
		nested := make(map[string]any)
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number text
		if err := decoder.Decode(&nested); err != nil {
			return nil, err
		}
		return flattenMap(nested, "")
	}
	return nil, fmt.Errorf("unsupported file format %q", format)
}

// parseArgs collects project properties from command-line arguments.
// Accepted forms: -Pkey=value, -Pkey (empty value), --key=value, --key value and
// --flag (value "true"). Values are kept as raw strings.
func parseArgs(args []string) (Properties, error) {
	result := make(Properties)
	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case strings.HasPrefix(arg, "-P"):
			i++
			keyPath, valueStr, _ := strings.Cut(strings.TrimPrefix(arg, "-P"), "=")
			if keyPath == "" {
				return nil, fmt.Errorf("empty property name in %q", arg)
			}
			result[keyPath] = valueStr

		case strings.HasPrefix(arg, "--"):
			argContent := strings.TrimPrefix(arg, "--")
			if argContent == "" {
				// "--" separator
				i++
				continue
			}

			var keyPath, valueStr string
			if k, v, found := strings.Cut(argContent, "="); found {
				keyPath, valueStr = k, v
				i++
			} else if i+1 >= len(args) || isFlagArg(args[i+1]) {
				// Boolean flag: next arg is another flag or end of args
				keyPath, valueStr = argContent, "true"
				i++
			} else {
				keyPath, valueStr = argContent, args[i+1]
				i += 2
			}

			if keyPath == "" {
				return nil, fmt.Errorf("empty property name in %q", arg)
			}
			result[keyPath] = valueStr

		default:
			// Skip non-flag arguments such as task names
			i++
		}
	}

	return result, nil
}

// isFlagArg reports whether arg starts a new property rather than being a value.
// Negative numbers such as "-5" stay values.
func isFlagArg(arg string) bool {
	return strings.HasPrefix(arg, "--") || strings.HasPrefix(arg, "-P")
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".properties", ".props":
		return FormatProperties
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return ""
}

// detectFormatFromContent attempts to detect format by parsing, in this order:
// JSON, TOML when a [table] header is present, YAML when a value is nested.
// Flat "key=value" or "key: value" text is valid TOML or YAML as well, but it is
// read as Java properties, the usual layout of an extension-less properties file.
func detectFormatFromContent(data []byte) string {
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	if hasTableHeader(data) {
		var tomlTest map[string]any
		if err := toml.Unmarshal(data, &tomlTest); err == nil {
			return FormatTOML
		}
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		for _, v := range yamlTest {
			switch v.(type) {
			case map[string]any, []any:
				return FormatYAML
			}
		}
	}

	return FormatProperties
}

// hasTableHeader reports whether any line opens a TOML table
func hasTableHeader(data []byte) bool {
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "[") {
			return true
		}
	}
	return false
}
