// FILE: lixenwraith/property/io.go
package property

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// Dump writes the merged view to w in the given format.
// TOML and YAML output nest dot-separated names into tables and fail with
// ErrNameConflict when a name is also a section. JSON output is a flat object.
func (s *Snapshot) Dump(w io.Writer, format string) error {
	return s.Properties().Dump(w, format)
}

// Dump writes p to w in the given format
func (p Properties) Dump(w io.Writer, format string) error {
	switch format {
	case FormatProperties, "":
		out := properties.NewProperties()
		out.DisableExpansion = true
		for _, name := range p.Names() {
			if _, _, err := out.Set(name, p[name]); err != nil {
				return fmt.Errorf("failed to set property %s: %w", name, err)
			}
		}
		if _, err := out.Write(w, properties.UTF8); err != nil {
			return fmt.Errorf("failed to write properties: %w", err)
		}
		return nil

	case FormatTOML:
		nested, err := nestProperties(p, false)
		if err != nil {
			return err
		}
		if err := toml.NewEncoder(w).Encode(nested); err != nil {
			return fmt.Errorf("failed to marshal properties to TOML: %w", err)
		}
		return nil

	case FormatYAML:
		nested, err := nestProperties(p, false)
		if err != nil {
			return err
		}
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(nested); err != nil {
			return fmt.Errorf("failed to marshal properties to YAML: %w", err)
		}
		return encoder.Close()

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(map[string]string(p)); err != nil {
			return fmt.Errorf("failed to marshal properties to JSON: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported dump format %q", format)
}

// Save writes the merged view to path atomically, choosing the format by extension.
// Unknown extensions are written as Java properties.
func (s *Snapshot) Save(path string) error {
	return s.SaveSource(path, "")
}

// SaveSource writes only the values loaded from source; an empty source saves the merged view
func (s *Snapshot) SaveSource(path string, source Source) error {
	props := s.Properties()
	if source != "" {
		props = s.Layer(source)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = FormatProperties
	}

	var buf bytes.Buffer
	if err := props.Dump(&buf, format); err != nil {
		return err
	}
	return atomicWriteFile(path, buf.Bytes())
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
