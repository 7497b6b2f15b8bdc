// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))

	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(""))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
}

func TestNewAttachesService(t *testing.T) {
	t.Setenv("LOG_SERVICE", "")
	var buf bytes.Buffer
	l := New(Config{Level: "info", Output: &buf})

	l.Debug().Msg("dropped")
	l.Info().Str("k", "v").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, DefaultService, entry["service"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "v", entry["k"])
}

func TestConfigureAndWithComponent(t *testing.T) {
	prev := Base()
	t.Cleanup(func() {
		mu.Lock()
		base = prev
		mu.Unlock()
	})

	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "svc"})
	logger := WithComponent("demo")
	logger.Debug().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "svc", entry["service"])
	assert.Equal(t, "demo", entry["component"])
	assert.Equal(t, "debug", entry["level"])
}
