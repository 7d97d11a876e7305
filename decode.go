// FILE: lixenwraith/property/decode.go
package property

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"
)

// TagName is the struct tag read by Scan
const TagName = "prop"

// Scan decodes the properties under basePath into target, a non-nil pointer to a
// struct or map. Dot-separated names become nested sections. Blank values are
// treated as absent and leave the matching fields untouched.
func (s *Snapshot) Scan(basePath string, target any) error {
	return scanProperties(s.Properties(), basePath, target)
}

// Scan decodes a plain property set the same way Snapshot.Scan does
func (p Properties) Scan(basePath string, target any) error {
	return scanProperties(p, basePath, target)
}

func scanProperties(props Properties, basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	nested, err := nestProperties(props, true)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	sectionData := navigateToPath(nested, basePath)

	sectionMap, ok := sectionData.(map[string]any)
	if !ok {
		if sectionData == nil {
			sectionMap = make(map[string]any) // Empty section
		} else {
			return fmt.Errorf("path %q refers to a value, not a section", basePath)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("decode failed for path %q: %w", basePath, err)
	}

	return nil
}

// decodeHook returns the composite decode hook for all type conversions
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToBoolHookFunc(),
		stringToBigIntHookFunc(),
		stringToDecimalHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(ListSeparator),
	)
}

var (
	bigIntType  = reflect.TypeOf(big.Int{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// stringToBoolHookFunc applies the boolean rule instead of strconv.ParseBool
func stringToBoolHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		return parseBool(data.(string)), nil
	}
}

// stringToBigIntHookFunc handles big.Int and *big.Int fields
func stringToBigIntHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Ptr
		targetType := t
		if isPtr {
			targetType = t.Elem()
		}
		if targetType != bigIntType {
			return data, nil
		}

		v, err := parseValue(data.(string), KindBigInt)
		if err != nil {
			return nil, fmt.Errorf("invalid bigint %q: %w", data, err)
		}
		if isPtr {
			return v.BigInt(), nil
		}
		return *v.BigInt(), nil
	}
}

// stringToDecimalHookFunc handles decimal.Decimal fields
func stringToDecimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != decimalType {
			return data, nil
		}
		v, err := parseValue(data.(string), KindBigDecimal)
		if err != nil {
			return nil, fmt.Errorf("invalid decimal %q: %w", data, err)
		}
		return v.BigDecimal(), nil
	}
}
