// FILE: lixenwraith/property/custom.go
package property

// Converter turns a raw property value into a custom type
type Converter[T any] func(raw string) (T, error)

// ResolveCustom resolves name and hands the raw value to conv.
// Errors returned by conv are propagated unchanged.
func ResolveCustom[T any](p Lookup, name string, conv Converter[T]) (T, bool, error) {
	var zero T
	raw, ok := ResolveString(p, name)
	if !ok {
		return zero, false, nil
	}
	v, err := conv(raw)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}
