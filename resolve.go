// FILE: lixenwraith/property/resolve.go
package property

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ResolveString returns the raw value of name if it exists and is not blank.
// A nil Lookup resolves every name as absent.
func ResolveString(p Lookup, name string) (string, bool) {
	if p == nil {
		return "", false
	}
	raw, ok := p.Lookup(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return "", false
	}
	return raw, true
}

// ResolveBool returns true iff the raw value equals "true" ignoring case.
// Unlike ResolveString, a blank value is not absent: it resolves to false.
// Only a missing name resolves as absent.
func ResolveBool(p Lookup, name string) (bool, bool) {
	if p == nil {
		return false, false
	}
	raw, ok := p.Lookup(name)
	if !ok {
		return false, false
	}
	return parseBool(raw), true
}

// ResolveScalar resolves name and converts it to kind.
// KindString and KindBool follow ResolveString and ResolveBool respectively.
func ResolveScalar(p Lookup, name string, kind Kind) (Value, bool, error) {
	switch {
	case kind == KindBool:
		b, ok := ResolveBool(p, name)
		if !ok {
			return Value{}, false, nil
		}
		return BoolValue(b), true, nil
	case !kind.Supported():
		return Value{}, false, unsupported(kind)
	}

	raw, ok := ResolveString(p, name)
	if !ok {
		return Value{}, false, nil
	}

	v, err := parseValue(raw, kind)
	if err != nil {
		return Value{}, false, &ConversionError{
			Property: name,
			Value:    raw,
			Kind:     kind,
			Index:    -1,
			Err:      err,
		}
	}
	return v, true, nil
}

// ResolveChar resolves a single-character property
func ResolveChar(p Lookup, name string) (rune, bool, error) {
	v, ok, err := ResolveScalar(p, name, KindChar)
	return v.Char(), ok, err
}

func ResolveInt32(p Lookup, name string) (int32, bool, error) {
	v, ok, err := ResolveScalar(p, name, KindInt32)
	return v.Int32(), ok, err
}

func ResolveInt64(p Lookup, name string) (int64, bool, error) {
	v, ok, err := ResolveScalar(p, name, KindInt64)
	return v.Int64(), ok, err
}

func ResolveFloat32(p Lookup, name string) (float32, bool, error) {
	v, ok, err := ResolveScalar(p, name, KindFloat32)
	return v.Float32(), ok, err
}

func ResolveFloat64(p Lookup, name string) (float64, bool, error) {
	v, ok, err := ResolveScalar(p, name, KindFloat64)
	return v.Float64(), ok, err
}

// ResolveBigInt resolves an arbitrary-precision integer; absent yields nil
func ResolveBigInt(p Lookup, name string) (*big.Int, bool, error) {
	v, ok, err := ResolveScalar(p, name, KindBigInt)
	return v.BigInt(), ok, err
}

func ResolveBigDecimal(p Lookup, name string) (decimal.Decimal, bool, error) {
	v, ok, err := ResolveScalar(p, name, KindBigDecimal)
	return v.BigDecimal(), ok, err
}
