// FILE: lixenwraith/property/snapshot.go
package property

import (
	"fmt"
	"strings"
)

// Snapshot is the immutable merged view of all loaded sources.
// It implements Lookup and is safe for concurrent reads.
type Snapshot struct {
	values  Properties
	origins map[string]Source
	layers  map[Source]Properties
	sources []Source
}

// NewSnapshot builds a snapshot from pre-parsed layers, first source winning
func NewSnapshot(sources []Source, layers map[Source]Properties) *Snapshot {
	return newSnapshot(layers, sources)
}

func newSnapshot(layers map[Source]Properties, sources []Source) *Snapshot {
	s := &Snapshot{
		values:  make(Properties),
		origins: make(map[string]Source),
		layers:  make(map[Source]Properties, len(layers)),
		sources: append([]Source(nil), sources...),
	}

	// Apply in reverse order for proper layering
	for i := len(sources) - 1; i >= 0; i-- {
		source := sources[i]
		layer, ok := layers[source]
		if !ok {
			continue
		}
		s.layers[source] = layer.Clone()
		for name, value := range layer {
			s.values[name] = value
			s.origins[name] = source
		}
	}

	return s
}

// Lookup returns the winning raw value for name
func (s *Snapshot) Lookup(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	return s.values.Lookup(name)
}

// Origin reports which source supplied the winning value for name
func (s *Snapshot) Origin(name string) (Source, bool) {
	if s == nil {
		return "", false
	}
	src, ok := s.origins[name]
	return src, ok
}

// Sources returns the raw value of name in every source that defines it
func (s *Snapshot) Sources(name string) map[Source]string {
	result := make(map[Source]string)
	if s == nil {
		return result
	}
	for source, layer := range s.layers {
		if v, ok := layer[name]; ok {
			result[source] = v
		}
	}
	return result
}

// Layer returns a copy of the properties loaded from one source
func (s *Snapshot) Layer(source Source) Properties {
	if s == nil {
		return Properties{}
	}
	return s.layers[source].Clone()
}

// Names returns all property names in sorted order
func (s *Snapshot) Names() []string {
	if s == nil {
		return nil
	}
	return s.values.Names()
}

// Properties returns a copy of the merged view
func (s *Snapshot) Properties() Properties {
	if s == nil {
		return Properties{}
	}
	return s.values.Clone()
}

// Require checks that every name resolves as present under the string rule,
// so blank values count as missing
func (s *Snapshot) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := ResolveString(s, name); !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingProperty, strings.Join(missing, ", "))
	}
	return nil
}

// Debug returns a formatted string showing all values and their sources
func (s *Snapshot) Debug() string {
	var b strings.Builder
	b.WriteString("Property Debug Info:\n")
	if s == nil {
		return b.String()
	}
	b.WriteString(fmt.Sprintf("Precedence: %v\n", s.sources))
	b.WriteString("Current values:\n")

	for _, name := range s.Names() {
		b.WriteString(fmt.Sprintf("  %s:\n", name))
		b.WriteString(fmt.Sprintf("    Current: %q (%s)\n", s.values[name], s.origins[name]))
		for _, source := range s.sources {
			if v, ok := s.layers[source][name]; ok {
				b.WriteString(fmt.Sprintf("    %s: %q\n", source, v))
			}
		}
	}

	return b.String()
}
