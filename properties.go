// FILE: lixenwraith/property/properties.go
package property

import "sort"

// Lookup is the read-only, already merged view of project properties.
// The second return value reports whether the name exists at all; a blank
// value is still reported as existing.
type Lookup interface {
	Lookup(name string) (string, bool)
}

// Properties is a plain map implementation of Lookup
type Properties map[string]string

func (p Properties) Lookup(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// Names returns the property names in sorted order
func (p Properties) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy
func (p Properties) Clone() Properties {
	clone := make(Properties, len(p))
	for k, v := range p {
		clone[k] = v
	}
	return clone
}

// Merge layers the given property sets, first argument winning.
// Nil sets are skipped.
func Merge(layers ...Properties) Properties {
	merged := make(Properties)
	for i := len(layers) - 1; i >= 0; i-- {
		for k, v := range layers[i] {
			merged[k] = v
		}
	}
	return merged
}
