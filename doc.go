// FILE: lixenwraith/property/doc.go

// Package property resolves typed values from a flat, string-keyed view of project
// properties. The view is the merge of invocation-time overrides (for example
// "-Pserver.port=9090") and a properties file, with the command line taking precedence.
//
// Features:
//   - Scalar resolution for string, char, bool, int32, int64, float32, float64,
//     big.Int and decimal.Decimal targets
//   - Comma-separated list resolution for any scalar element kind
//   - Custom target types through an explicit converter function
//   - Binders that write into caller-owned cells only when a value is present
//   - Snapshot loading from .properties, TOML, YAML and JSON files plus CLI overrides
//   - Source tracking to see where a value originated
//   - Struct scanning of a snapshot section
//
// Quick Start:
//
//	snap, err := property.NewBuilder().
//	    WithFile("gradle.properties").
//	    WithArgs(os.Args[1:]).
//	    Build()
//	if err != nil && !errors.Is(err, property.ErrConfigNotFound) {
//	    log.Fatal(err)
//	}
//
//	port := int32(8080)
//	if err := property.BindInt32(snap, "server.port", &port); err != nil {
//	    log.Fatal(err)
//	}
//
// Presence:
// A property is present only if its raw value exists and is not blank. Whitespace-only
// values resolve as absent for every kind except bool. Boolean resolution treats any
// existing raw value as decidable: it yields true iff the value equals "true" ignoring
// case, so a blank value yields false rather than absent.
//
// Lists:
// List values are split on every literal comma. There is no escaping and no trimming,
// so an element can never contain a comma and " 2" is not a valid int32 element.
//
// Default Precedence (highest to lowest):
//  1. Command-line project properties (-Pkey=value, --key=value)
//  2. Properties file
//  3. Default values
package property
