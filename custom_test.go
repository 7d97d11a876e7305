// FILE: lixenwraith/property/custom_test.go
package property

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type endpoint struct {
	Host string
	Port string
}

var errNoPort = errors.New("endpoint needs a port")

func parseEndpoint(raw string) (endpoint, error) {
	host, port, found := strings.Cut(raw, ":")
	if !found {
		return endpoint{}, errNoPort
	}
	return endpoint{Host: host, Port: port}, nil
}

// TestResolveCustom tests converter-based resolution
func TestResolveCustom(t *testing.T) {
	props := Properties{
		"api":      "example.com:8443",
		"bad":      "example.com",
		"blank":    "  ",
		"timeout":  "1m30s",
		"homepage": "https://example.com/docs?q=1",
	}

	t.Run("Converts", func(t *testing.T) {
		ep, ok, err := ResolveCustom(props, "api", parseEndpoint)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, endpoint{Host: "example.com", Port: "8443"}, ep)
	})

	t.Run("ConverterErrorPropagatesUnchanged", func(t *testing.T) {
		_, ok, err := ResolveCustom(props, "bad", parseEndpoint)
		assert.False(t, ok)
		assert.Same(t, errNoPort, err)
		assert.NotErrorIs(t, err, ErrConversion)
	})

	t.Run("AbsentSkipsConverter", func(t *testing.T) {
		called := false
		conv := func(raw string) (int, error) {
			called = true
			return 0, fmt.Errorf("should not run")
		}
		for _, name := range []string{"blank", "missing"} {
			_, ok, err := ResolveCustom(props, name, conv)
			assert.NoError(t, err)
			assert.False(t, ok)
		}
		assert.False(t, called)
	})

	t.Run("StandardLibraryParsers", func(t *testing.T) {
		d, ok, err := ResolveCustom(props, "timeout", time.ParseDuration)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 90*time.Second, d)

		u, ok, err := ResolveCustom(props, "homepage", url.Parse)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "example.com", u.Host)
	})
}
