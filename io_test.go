// FILE: lixenwraith/property/io_test.go
package property

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *Snapshot {
	return NewSnapshot([]Source{SourceCLI, SourceFile, SourceDefault}, map[Source]Properties{
		SourceDefault: {"server.host": "localhost", "retries": "3"},
		SourceFile:    {"server.host": "example.com", "server.port": "8080", "tags": "a,b"},
		SourceCLI:     {"server.port": "9090"},
	})
}

// TestSaveAndReload tests that every save format loads back to the same properties
func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	snap := testSnapshot()

	for _, file := range []string{"out.properties", "out.toml", "out.yaml", "out.json", "nested/dir/out.txt"} {
		t.Run(file, func(t *testing.T) {
			path := filepath.Join(tmpDir, file)
			require.NoError(t, snap.Save(path))

			format := ""
			if strings.HasSuffix(file, ".txt") {
				format = FormatProperties
			}
			loaded, err := LoadFile(path, format)
			require.NoError(t, err)
			assert.Equal(t, snap.Properties(), loaded)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
		})
	}

	t.Run("NoTempFilesLeft", func(t *testing.T) {
		entries, err := os.ReadDir(tmpDir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp")
		}
	})
}

// TestSaveSource tests saving a single layer
func TestSaveSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.properties")
	require.NoError(t, testSnapshot().SaveSource(path, SourceCLI))

	loaded, err := LoadFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, Properties{"server.port": "9090"}, loaded)
}

// TestDump tests writer output
func TestDump(t *testing.T) {
	snap := testSnapshot()

	t.Run("Properties", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, snap.Dump(&buf, FormatProperties))
		assert.Equal(t, "retries = 3\nserver.host = example.com\nserver.port = 9090\ntags = a,b\n", buf.String())
	})

	t.Run("TOML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, snap.Dump(&buf, FormatTOML))
		assert.Contains(t, buf.String(), "[server]")
		assert.Contains(t, buf.String(), `port = "9090"`)
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, snap.Dump(&buf, FormatYAML))
		assert.Contains(t, buf.String(), "server:")
		assert.Contains(t, buf.String(), `port: "9090"`)
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, snap.Dump(&buf, FormatJSON))
		assert.JSONEq(t, `{"retries":"3","server.host":"example.com","server.port":"9090","tags":"a,b"}`, buf.String())
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		assert.Error(t, snap.Dump(&bytes.Buffer{}, "xml"))
	})
}

// TestSnapshot tests source tracking and the read-only view
func TestSnapshot(t *testing.T) {
	snap := testSnapshot()

	assert.Equal(t, []string{"retries", "server.host", "server.port", "tags"}, snap.Names())

	src, ok := snap.Origin("server.host")
	assert.True(t, ok)
	assert.Equal(t, SourceFile, src)
	src, _ = snap.Origin("retries")
	assert.Equal(t, SourceDefault, src)
	_, ok = snap.Origin("missing")
	assert.False(t, ok)

	// Returned maps are copies
	props := snap.Properties()
	props["server.port"] = "1"
	v, _ := snap.Lookup("server.port")
	assert.Equal(t, "9090", v)

	layer := snap.Layer(SourceFile)
	layer["tags"] = "z"
	assert.Equal(t, "a,b", snap.Sources("tags")[SourceFile])

	debug := snap.Debug()
	assert.Contains(t, debug, "Precedence: [cli file default]")
	assert.Contains(t, debug, `Current: "9090" (cli)`)
	assert.Contains(t, debug, `file: "8080"`)

	require.NoError(t, snap.Require("server.host", "tags"))
	assert.ErrorIs(t, snap.Require("server.host", "nope"), ErrMissingProperty)

	var nilSnap *Snapshot
	_, ok = ResolveString(nilSnap, "x")
	assert.False(t, ok)
	assert.Empty(t, nilSnap.Names())
}

// TestDumpNameConflict tests names that are both a value and a section
func TestDumpNameConflict(t *testing.T) {
	props := Properties{"version": "1.0", "version.suffix": "SNAPSHOT"}

	for _, format := range []string{FormatTOML, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			err := props.Dump(&buf, format)
			require.ErrorIs(t, err, ErrNameConflict)
			assert.Contains(t, err.Error(), `"version"`)
			assert.Contains(t, err.Error(), `"version.suffix"`)
		})
	}

	t.Run("FlatFormatsKeepBoth", func(t *testing.T) {
		tmpDir := t.TempDir()
		for _, file := range []string{"gradle.properties", "gradle.json"} {
			path := filepath.Join(tmpDir, file)
			snap := NewSnapshot([]Source{SourceFile}, map[Source]Properties{SourceFile: props})
			require.NoError(t, snap.Save(path))

			loaded, err := LoadFile(path, "")
			require.NoError(t, err)
			assert.Equal(t, props, loaded)
		}
	})

	t.Run("SaveTOMLFails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gradle.toml")
		snap := NewSnapshot([]Source{SourceFile}, map[Source]Properties{SourceFile: props})
		assert.ErrorIs(t, snap.Save(path), ErrNameConflict)
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})
}

// TestSaveKeepsNumberText tests that exact numbers survive a save and reload
func TestSaveKeepsNumberText(t *testing.T) {
	props := Properties{"big": "123456789012345678901234567890", "ver": "1.10", "dec": "0.10000000000000000000001"}
	snap := NewSnapshot([]Source{SourceFile}, map[Source]Properties{SourceFile: props})

	for _, file := range []string{"n.properties", "n.toml", "n.yaml", "n.json"} {
		t.Run(file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), file)
			require.NoError(t, snap.Save(path))

			loaded, err := LoadFile(path, "")
			require.NoError(t, err)
			assert.Equal(t, props, loaded)
		})
	}
}
