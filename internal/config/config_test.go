package config

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load(New())

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.Seed)
	assert.InDelta(t, 5.0, cfg.RateLimitRPS, 0.0001)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PASSBOARD_PORT", "9090")
	t.Setenv("PASSBOARD_SEED", "false")
	t.Setenv("PASSBOARD_RATELIMIT_BURST", "3")
	t.Setenv("PASSBOARD_LOG_FORMAT", "json")

	cfg := Load(New())

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.Seed)
	assert.Equal(t, 3, cfg.RateLimitBurst)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadExplicitOverride(t *testing.T) {
	v := New()
	v.Set("port", "7000")

	assert.Equal(t, "7000", Load(v).Port)
}

func TestNewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(Config{LogLevel: "debug", LogFormat: "json"}, &buf)
		logger.Debug("hello", "k", "v")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["msg"])
		assert.Equal(t, "v", line["k"])
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(Config{LogLevel: "warn", LogFormat: "text"}, &buf)
		logger.Info("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(Config{LogLevel: "chatty"}, &buf)
		logger.Debug("hidden")
		logger.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}
