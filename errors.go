// FILE: lixenwraith/property/errors.go
package property

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfigNotFound is returned when a properties file does not exist.
	// It is not fatal for the builder, which falls back to the remaining sources.
	ErrConfigNotFound = errors.New("properties file not found")

	// ErrCLIParse wraps malformed command-line project properties
	ErrCLIParse = errors.New("failed to parse command-line properties")

	// ErrConversion matches every *ConversionError through errors.Is
	ErrConversion = errors.New("property conversion failed")

	// ErrUnsupportedType matches every *UnsupportedTypeError through errors.Is
	ErrUnsupportedType = errors.New("unsupported property type")

	// ErrMissingProperty is returned by Require for properties that resolve as absent
	ErrMissingProperty = errors.New("missing required property")

	// ErrNameConflict is returned when nesting names where one name is a prefix
	// section of another, such as "version" and "version.suffix"
	ErrNameConflict = errors.New("property is both a value and a section")
)

// ConversionError reports a raw value that cannot be converted to the requested kind.
// For list resolution Index is the zero-based element position and Element its text;
// for scalar resolution Index is -1.
type ConversionError struct {
	Property string
	Value    string
	Kind     Kind
	Index    int
	Element  string
	Err      error
}

func (e *ConversionError) Error() string {
	var b strings.Builder
	if e.Index >= 0 {
		fmt.Fprintf(&b, "cannot convert element %q at position %d of %q to %s for property %s",
			e.Element, e.Index, e.Value, e.Kind, e.Property)
	} else {
		fmt.Fprintf(&b, "cannot convert %q to %s for property %s", e.Value, e.Kind, e.Property)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ConversionError) Unwrap() error { return e.Err }

func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// UnsupportedTypeError reports a kind outside the built-in scalar set.
// Name carries the unrecognized kind name when the kind came from ParseKind.
type UnsupportedTypeError struct {
	Kind      Kind
	Name      string
	Supported []Kind
}

func (e *UnsupportedTypeError) Error() string {
	names := make([]string, len(e.Supported))
	for i, k := range e.Supported {
		names[i] = k.String()
	}
	requested := e.Kind.String()
	if e.Name != "" {
		requested = e.Name
	}
	return fmt.Sprintf("unknown type %q: provide a converter for custom types (supported: %s)",
		requested, strings.Join(names, ", "))
}

func (e *UnsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }

func unsupported(k Kind) error {
	return &UnsupportedTypeError{Kind: k, Supported: SupportedKinds()}
}
