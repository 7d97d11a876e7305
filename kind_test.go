// FILE: lixenwraith/property/kind_test.go
package property

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseKind tests kind names and aliases
func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"string", KindString},
		{"Character", KindChar},
		{"boolean", KindBool},
		{"int", KindInt32},
		{"INT32", KindInt32},
		{"long", KindInt64},
		{"float", KindFloat32},
		{"double", KindFloat64},
		{"BigInteger", KindBigInt},
		{"decimal", KindBigDecimal},
		{" bigdecimal ", KindBigDecimal},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			k, err := ParseKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, k)
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		_, err := ParseKind("uuid")
		assert.ErrorIs(t, err, ErrUnsupportedType)
		assert.Contains(t, err.Error(), `"uuid"`)
	})

	t.Run("NamesRoundTrip", func(t *testing.T) {
		for _, k := range SupportedKinds() {
			parsed, err := ParseKind(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, parsed)
		}
	})
}

// TestSupportedKinds tests the supported set
func TestSupportedKinds(t *testing.T) {
	kinds := SupportedKinds()
	assert.Len(t, kinds, 9)
	for _, k := range kinds {
		assert.True(t, k.Supported(), k.String())
	}
	assert.False(t, KindCustom.Supported())
	assert.False(t, KindInvalid.Supported())

	// Callers cannot mutate the package list
	kinds[0] = KindCustom
	assert.Equal(t, KindString, SupportedKinds()[0])
}

// TestValueAccessors tests the tagged variant accessors
func TestValueAccessors(t *testing.T) {
	v := Int32Value(12)
	assert.Equal(t, KindInt32, v.Kind())
	assert.Equal(t, int32(12), v.Int32())
	assert.Equal(t, int64(0), v.Int64(), "other kinds read as zero")
	assert.Equal(t, int32(12), v.Interface())

	bi := big.NewInt(77)
	bv := BigIntValue(bi)
	bi.SetInt64(1) // the value holds its own copy
	assert.Equal(t, "77", bv.String())
	bv.BigInt().SetInt64(2)
	assert.Equal(t, "77", bv.String())
	assert.Nil(t, v.BigInt())

	assert.True(t, BigDecimalValue(decimal.RequireFromString("1.50")).Equal(BigDecimalValue(decimal.RequireFromString("1.5"))))
	assert.False(t, Int32Value(1).Equal(Int64Value(1)))
	assert.Equal(t, "A", CharValue('A').String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "0.1", Float32Value(0.1).String())
	assert.Nil(t, Value{}.Interface())

	nilBig := BigIntValue(nil)
	assert.Equal(t, "0", nilBig.String())
	assert.True(t, nilBig.Equal(BigIntValue(big.NewInt(0))))
	assert.Equal(t, KindInvalid, Value{}.Kind())
}

// TestErrorMessages tests the error text formats
func TestErrorMessages(t *testing.T) {
	scalar := &ConversionError{Property: "p", Value: "AB", Kind: KindChar, Index: -1, Err: errCharLength}
	assert.Equal(t, `cannot convert "AB" to char for property p: expected exactly one character`, scalar.Error())

	elem := &ConversionError{Property: "x", Value: "1,a", Kind: KindInt32, Index: 1, Element: "a"}
	assert.Equal(t, `cannot convert element "a" at position 1 of "1,a" to int32 for property x`, elem.Error())

	typeErr := &UnsupportedTypeError{Kind: KindCustom, Supported: []Kind{KindString, KindInt32}}
	assert.Equal(t, `unknown type "custom": provide a converter for custom types (supported: string, int32)`, typeErr.Error())
}
