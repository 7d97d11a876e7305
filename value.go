// FILE: lixenwraith/property/value.go
package property

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	errCharLength = errors.New("expected exactly one character")
	errBigInt     = errors.New("invalid integer literal")
)

// Value is a resolved property converted to one of the scalar kinds.
// Accessors for a kind other than Kind() return the zero value of their type.
type Value struct {
	kind Kind
	s    string
	r    rune
	b    bool
	i    int64
	f    float64
	bi   *big.Int
	bd   decimal.Decimal
}

// StringValue wraps s as a KindString value
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// CharValue wraps r as a KindChar value
func CharValue(r rune) Value { return Value{kind: KindChar, r: r} }

// BoolValue wraps b as a KindBool value
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// Int32Value wraps i as a KindInt32 value
func Int32Value(i int32) Value { return Value{kind: KindInt32, i: int64(i)} }

// Int64Value wraps i as a KindInt64 value
func Int64Value(i int64) Value { return Value{kind: KindInt64, i: i} }

// Float32Value wraps f as a KindFloat32 value
func Float32Value(f float32) Value { return Value{kind: KindFloat32, f: float64(f)} }

// Float64Value wraps f as a KindFloat64 value
func Float64Value(f float64) Value { return Value{kind: KindFloat64, f: f} }

// BigIntValue wraps a copy of i as a KindBigInt value; nil is taken as zero
func BigIntValue(i *big.Int) Value {
	v := new(big.Int)
	if i != nil {
		v.Set(i)
	}
	return Value{kind: KindBigInt, bi: v}
}

// BigDecimalValue wraps d as a KindBigDecimal value
func BigDecimalValue(d decimal.Decimal) Value { return Value{kind: KindBigDecimal, bd: d} }

// Kind returns the kind of the held value; the zero Value is KindInvalid
func (v Value) Kind() Kind { return v.kind }

// Str returns the held string
func (v Value) Str() string { return v.s }

// Char returns the held character
func (v Value) Char() rune { return v.r }

// Bool returns the held boolean
func (v Value) Bool() bool { return v.b }

// Int32 returns the held int32
func (v Value) Int32() int32 {
	if v.kind != KindInt32 {
		return 0
	}
	return int32(v.i)
}

// Int64 returns the held int64
func (v Value) Int64() int64 {
	if v.kind != KindInt64 {
		return 0
	}
	return v.i
}

// Float32 returns the held float32
func (v Value) Float32() float32 {
	if v.kind != KindFloat32 {
		return 0
	}
	return float32(v.f)
}

// Float64 returns the held float64
func (v Value) Float64() float64 {
	if v.kind != KindFloat64 {
		return 0
	}
	return v.f
}

// BigInt returns a copy of the held integer, or nil for other kinds
func (v Value) BigInt() *big.Int {
	if v.kind != KindBigInt || v.bi == nil {
		return nil
	}
	return new(big.Int).Set(v.bi)
}

// BigDecimal returns the held decimal
func (v Value) BigDecimal() decimal.Decimal {
	if v.kind != KindBigDecimal {
		return decimal.Decimal{}
	}
	return v.bd
}

// Interface returns the held value as its natural Go type
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindChar:
		return v.r
	case KindBool:
		return v.b
	case KindInt32:
		return int32(v.i)
	case KindInt64:
		return v.i
	case KindFloat32:
		return float32(v.f)
	case KindFloat64:
		return v.f
	case KindBigInt:
		return v.BigInt()
	case KindBigDecimal:
		return v.bd
	}
	return nil
}

// String formats the value canonically. Resolving the canonical form again
// yields an equal value.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindChar:
		return string(v.r)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt32, KindInt64:
		return strconv.FormatInt(v.i, 10)
	case KindFloat32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBigInt:
		if v.bi == nil {
			return "0"
		}
		return v.bi.String()
	case KindBigDecimal:
		return v.bd.String()
	}
	return ""
}

// Equal compares kind and value. Decimals compare numerically, so 1.0 equals 1.00.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBigInt:
		return bigOrZero(v.bi).Cmp(bigOrZero(o.bi)) == 0
	case KindBigDecimal:
		return v.bd.Equal(o.bd)
	case KindFloat32, KindFloat64:
		return v.f == o.f
	}
	return v.Interface() == o.Interface()
}

func bigOrZero(i *big.Int) *big.Int {
	if i == nil {
		return new(big.Int)
	}
	return i
}

// parseBool applies the boolean rule: true iff raw equals "true" ignoring case
func parseBool(raw string) bool {
	return strings.EqualFold(raw, "true")
}

// parseValue converts raw to kind. String and bool never fail.
// The returned error is the bare cause; callers wrap it in a ConversionError.
func parseValue(raw string, kind Kind) (Value, error) {
	switch kind {
	case KindString:
		return StringValue(raw), nil
	case KindBool:
		return BoolValue(parseBool(raw)), nil
	case KindChar:
		if utf8.RuneCountInString(raw) != 1 {
			return Value{}, errCharLength
		}
		r, _ := utf8.DecodeRuneInString(raw)
		return CharValue(r), nil
	case KindInt32:
		i, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return Value{}, err
		}
		return Int32Value(int32(i)), nil
	case KindInt64:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Int64Value(i), nil
	case KindFloat32:
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return Value{}, err
		}
		return Float32Value(float32(f)), nil
	case KindFloat64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, err
		}
		return Float64Value(f), nil
	case KindBigInt:
		i, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return Value{}, errBigInt
		}
		return Value{kind: KindBigInt, bi: i}, nil
	case KindBigDecimal:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return Value{}, err
		}
		return BigDecimalValue(d), nil
	}
	return Value{}, unsupported(kind)
}
