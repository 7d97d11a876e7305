// FILE: lixenwraith/property/decode_test.go
package property

import (
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanWithComplexTypes tests scanning with the built-in kinds and hooks
func TestScanWithComplexTypes(t *testing.T) {
	type ServerConfig struct {
		Host    string        `prop:"host"`
		Port    int32         `prop:"port"`
		Debug   bool          `prop:"debug"`
		Timeout time.Duration `prop:"timeout"`
	}

	type AppConfig struct {
		Server  ServerConfig    `prop:"server"`
		Tags    []string        `prop:"tags"`
		Ports   []int           `prop:"ports"`
		Total   *big.Int        `prop:"total"`
		Price   decimal.Decimal `prop:"price"`
		Ratio   float64         `prop:"ratio"`
		Missing string          `prop:"missing"`
	}

	props := Properties{
		"server.host":    "example.com",
		"server.port":    "9090",
		"server.debug":   "TRUE",
		"server.timeout": "2m30s",
		"tags":           "prod,staging,test",
		"ports":          "80,443",
		"total":          "123456789012345678901234567890",
		"price":          "19.99",
		"ratio":          "0.75",
	}

	result := AppConfig{Missing: "kept"}
	require.NoError(t, props.Scan("", &result))

	assert.Equal(t, "example.com", result.Server.Host)
	assert.Equal(t, int32(9090), result.Server.Port)
	assert.True(t, result.Server.Debug)
	assert.Equal(t, 150*time.Second, result.Server.Timeout)
	assert.Equal(t, []string{"prod", "staging", "test"}, result.Tags)
	assert.Equal(t, []int{80, 443}, result.Ports)
	require.NotNil(t, result.Total)
	assert.Equal(t, "123456789012345678901234567890", result.Total.String())
	assert.True(t, result.Price.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, 0.75, result.Ratio)
	assert.Equal(t, "kept", result.Missing)
}

// TestScanWithBasePath tests scanning from nested paths
func TestScanWithBasePath(t *testing.T) {
	type ServerConfig struct {
		Host    string `prop:"host"`
		Port    int    `prop:"port"`
		Enabled bool   `prop:"enabled"`
	}

	snap := NewSnapshot([]Source{SourceCLI, SourceFile}, map[Source]Properties{
		SourceFile: {
			"app.server.host":    "filehost",
			"app.server.port":    "8080",
			"app.server.enabled": "yes",
			"app.database.host":  "dbhost",
		},
		SourceCLI: {"app.server.port": "9000"},
	})

	var server ServerConfig
	require.NoError(t, snap.Scan("app.server", &server))
	assert.Equal(t, "filehost", server.Host)
	assert.Equal(t, 9000, server.Port)
	assert.False(t, server.Enabled, "only \"true\" is true")

	t.Run("TrailingDot", func(t *testing.T) {
		var s ServerConfig
		require.NoError(t, snap.Scan("app.server.", &s))
		assert.Equal(t, 9000, s.Port)
	})

	t.Run("NonexistentPath", func(t *testing.T) {
		empty := ServerConfig{Host: "untouched"}
		require.NoError(t, snap.Scan("app.nonexistent", &empty))
		assert.Equal(t, "untouched", empty.Host)
	})

	t.Run("PathToValue", func(t *testing.T) {
		var s ServerConfig
		assert.Error(t, snap.Scan("app.server.host", &s))
	})

	t.Run("NonPointerTarget", func(t *testing.T) {
		var s ServerConfig
		assert.Error(t, snap.Scan("", s))
	})

	t.Run("IntoMap", func(t *testing.T) {
		m := make(map[string]string)
		require.NoError(t, snap.Scan("app.database", &m))
		assert.Equal(t, map[string]string{"host": "dbhost"}, m)
	})
}

// TestScanBlankAndErrors tests blank values and conversion failures
func TestScanBlankAndErrors(t *testing.T) {
	type Config struct {
		Port  int      `prop:"port"`
		Name  string   `prop:"name"`
		Total *big.Int `prop:"total"`
	}

	t.Run("BlankIsAbsent", func(t *testing.T) {
		c := Config{Port: 1, Name: "default"}
		require.NoError(t, Properties{"port": "  ", "name": ""}.Scan("", &c))
		assert.Equal(t, 1, c.Port)
		assert.Equal(t, "default", c.Name)
	})

	t.Run("BadBigInt", func(t *testing.T) {
		var c Config
		err := Properties{"total": "1.5"}.Scan("", &c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid bigint")
	})

	t.Run("BadInt", func(t *testing.T) {
		var c Config
		assert.Error(t, Properties{"port": "eighty"}.Scan("", &c))
	})

	t.Run("NameConflict", func(t *testing.T) {
		var c Config
		err := Properties{"name": "app", "name.suffix": "SNAPSHOT"}.Scan("", &c)
		require.ErrorIs(t, err, ErrNameConflict)
		assert.Contains(t, err.Error(), `"name.suffix"`)
	})

	t.Run("BlankPrefixIsNoConflict", func(t *testing.T) {
		type Versioned struct {
			Version struct {
				Suffix string `prop:"suffix"`
			} `prop:"version"`
		}
		var v Versioned
		require.NoError(t, Properties{"version": " ", "version.suffix": "SNAPSHOT"}.Scan("", &v))
		assert.Equal(t, "SNAPSHOT", v.Version.Suffix)
	})
}
