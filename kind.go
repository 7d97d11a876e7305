// FILE: lixenwraith/property/kind.go
package property

import (
	"fmt"
	"strings"
)

// Kind identifies the target type of a resolution
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindChar
	KindBool
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindBigInt
	KindBigDecimal
	// KindCustom marks values produced by a caller-supplied converter.
	// It is never a valid scalar or list element kind.
	KindCustom
)

var kindNames = map[Kind]string{
	KindInvalid:    "invalid",
	KindString:     "string",
	KindChar:       "char",
	KindBool:       "bool",
	KindInt32:      "int32",
	KindInt64:      "int64",
	KindFloat32:    "float32",
	KindFloat64:    "float64",
	KindBigInt:     "bigint",
	KindBigDecimal: "bigdecimal",
	KindCustom:     "custom",
}

// supportedKinds is ordered for error messages and CLI listings
var supportedKinds = []Kind{
	KindString,
	KindChar,
	KindBool,
	KindInt32,
	KindInt64,
	KindFloat32,
	KindFloat64,
	KindBigInt,
	KindBigDecimal,
}

// String returns the lower-case name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Supported reports whether k is one of the built-in scalar kinds
func (k Kind) Supported() bool {
	return k >= KindString && k <= KindBigDecimal
}

// SupportedKinds returns the built-in scalar kinds in declaration order.
// The returned slice is a copy.
func SupportedKinds() []Kind {
	kinds := make([]Kind, len(supportedKinds))
	copy(kinds, supportedKinds)
	return kinds
}

// ParseKind maps a kind name to its Kind. Matching ignores case and accepts a few
// common aliases ("int", "long", "double", "float", "decimal", "character").
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "string", "str":
		return KindString, nil
	case "char", "character", "rune":
		return KindChar, nil
	case "bool", "boolean":
		return KindBool, nil
	case "int32", "int":
		return KindInt32, nil
	case "int64", "long":
		return KindInt64, nil
	case "float32", "float":
		return KindFloat32, nil
	case "float64", "double":
		return KindFloat64, nil
	case "bigint", "biginteger":
		return KindBigInt, nil
	case "bigdecimal", "decimal":
		return KindBigDecimal, nil
	}
	return KindInvalid, &UnsupportedTypeError{Kind: KindInvalid, Name: name, Supported: SupportedKinds()}
}
