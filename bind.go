// FILE: lixenwraith/property/bind.go
package property

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Binders write a resolved value into a caller-owned cell. An absent property
// leaves the cell as it was, and a resolution error is returned before any write.
// A nil cell is never written.

// bind is the shared write step for all binders
func bind[T any](cell *T, v T, ok bool, err error) error {
	if err != nil {
		return err
	}
	if ok && cell != nil {
		*cell = v
	}
	return nil
}

func BindString(p Lookup, name string, cell *string) {
	if v, ok := ResolveString(p, name); ok && cell != nil {
		*cell = v
	}
}

// BindBool follows ResolveBool: a blank value binds false
func BindBool(p Lookup, name string, cell *bool) {
	if v, ok := ResolveBool(p, name); ok && cell != nil {
		*cell = v
	}
}

func BindChar(p Lookup, name string, cell *rune) error {
	v, ok, err := ResolveChar(p, name)
	return bind(cell, v, ok, err)
}

func BindInt32(p Lookup, name string, cell *int32) error {
	v, ok, err := ResolveInt32(p, name)
	return bind(cell, v, ok, err)
}

func BindInt64(p Lookup, name string, cell *int64) error {
	v, ok, err := ResolveInt64(p, name)
	return bind(cell, v, ok, err)
}

func BindFloat32(p Lookup, name string, cell *float32) error {
	v, ok, err := ResolveFloat32(p, name)
	return bind(cell, v, ok, err)
}

func BindFloat64(p Lookup, name string, cell *float64) error {
	v, ok, err := ResolveFloat64(p, name)
	return bind(cell, v, ok, err)
}

// BindBigInt replaces the pointer held by cell, it does not mutate the old integer
func BindBigInt(p Lookup, name string, cell **big.Int) error {
	v, ok, err := ResolveBigInt(p, name)
	return bind(cell, v, ok, err)
}

func BindBigDecimal(p Lookup, name string, cell *decimal.Decimal) error {
	v, ok, err := ResolveBigDecimal(p, name)
	return bind(cell, v, ok, err)
}

// BindValue binds a scalar of the given kind into a Value cell
func BindValue(p Lookup, name string, kind Kind, cell *Value) error {
	v, ok, err := ResolveScalar(p, name, kind)
	return bind(cell, v, ok, err)
}

func BindList(p Lookup, name string, elem Kind, cell *[]Value) error {
	v, ok, err := ResolveList(p, name, elem)
	return bind(cell, v, ok, err)
}

func BindStringList(p Lookup, name string, cell *[]string) {
	if v, ok := ResolveStringList(p, name); ok && cell != nil {
		*cell = v
	}
}

func BindInt32List(p Lookup, name string, cell *[]int32) error {
	v, ok, err := ResolveInt32List(p, name)
	return bind(cell, v, ok, err)
}

// BindCustom binds the result of conv. Converter errors are returned unchanged.
func BindCustom[T any](p Lookup, name string, cell *T, conv Converter[T]) error {
	v, ok, err := ResolveCustom(p, name, conv)
	return bind(cell, v, ok, err)
}
