// File: lixenwraith/property/convenience.go
package property

import (
	"errors"
	"fmt"
	"os"
)

// Quick loads filePath and the process arguments with standard precedence: CLI > File.
// A missing file is not an error.
func Quick(filePath string) (*Snapshot, error) {
	snap, err := NewBuilder().
		WithFile(filePath).
		WithArgs(os.Args[1:]).
		Build()
	if errors.Is(err, ErrConfigNotFound) {
		return snap, nil
	}
	return snap, err
}

// MustQuick is like Quick but panics on error
func MustQuick(filePath string) *Snapshot {
	snap, err := Quick(filePath)
	if err != nil {
		panic(fmt.Sprintf("property initialization failed: %v", err))
	}
	return snap
}

// FromArgs returns a snapshot holding only the command-line project properties in args
func FromArgs(args []string) (*Snapshot, error) {
	cli, err := parseArgs(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCLIParse, err)
	}
	return newSnapshot(map[Source]Properties{SourceCLI: cli}, []Source{SourceCLI}), nil
}
