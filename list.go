// FILE: lixenwraith/property/list.go
package property

import "strings"

// ListSeparator splits list values. There is no escaping: an element can never
// contain the separator.
const ListSeparator = ","

// ResolveList splits the raw value of name on every comma and converts each
// element to elem. Elements are not trimmed, order and duplicates are kept.
// The first failing element aborts the whole resolution.
func ResolveList(p Lookup, name string, elem Kind) ([]Value, bool, error) {
	raw, ok := ResolveString(p, name)
	if !ok {
		return nil, false, nil
	}
	if !elem.Supported() {
		return nil, false, unsupported(elem)
	}

	parts := strings.Split(raw, ListSeparator)
	values := make([]Value, 0, len(parts))
	for i, part := range parts {
		v, err := parseValue(part, elem)
		if err != nil {
			return nil, false, &ConversionError{
				Property: name,
				Value:    raw,
				Kind:     elem,
				Index:    i,
				Element:  part,
				Err:      err,
			}
		}
		values = append(values, v)
	}
	return values, true, nil
}

// ResolveStringList returns the comma-separated elements of name verbatim
func ResolveStringList(p Lookup, name string) ([]string, bool) {
	values, ok, _ := ResolveList(p, name, KindString)
	if !ok {
		return nil, false
	}
	return mapValues(values, Value.Str), true
}

func ResolveInt32List(p Lookup, name string) ([]int32, bool, error) {
	values, ok, err := ResolveList(p, name, KindInt32)
	if !ok {
		return nil, false, err
	}
	return mapValues(values, Value.Int32), true, nil
}

func ResolveInt64List(p Lookup, name string) ([]int64, bool, error) {
	values, ok, err := ResolveList(p, name, KindInt64)
	if !ok {
		return nil, false, err
	}
	return mapValues(values, Value.Int64), true, nil
}

func ResolveFloat64List(p Lookup, name string) ([]float64, bool, error) {
	values, ok, err := ResolveList(p, name, KindFloat64)
	if !ok {
		return nil, false, err
	}
	return mapValues(values, Value.Float64), true, nil
}

func mapValues[T any](values []Value, get func(Value) T) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = get(v)
	}
	return out
}
