package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("PRODUCT_API_BASE_URL", "")
	t.Setenv("PRODUCT_API_TIMEOUT_MS", "")
	t.Setenv("DEFAULT_LOCALE", "")
	t.Setenv("LOG_LEVEL", "")
	c := Load()
	assert.Equal(t, ":3000", c.HTTPAddr)
	assert.Equal(t, 15*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8080", c.ProductAPIBaseURL)
	assert.Equal(t, 10*time.Second, c.ProductAPITimeout)
	assert.Equal(t, "en-US", c.DefaultLocale)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "2")
	t.Setenv("PRODUCT_API_BASE_URL", "https://api.staging.example/")
	t.Setenv("PRODUCT_API_TIMEOUT_MS", "250")
	t.Setenv("DEFAULT_LOCALE", "de-DE")
	t.Setenv("LOG_LEVEL", "debug")
	c := Load()
	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, 2*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "https://api.staging.example", c.ProductAPIBaseURL)
	assert.Equal(t, 250*time.Millisecond, c.ProductAPITimeout)
	assert.Equal(t, "de-DE", c.DefaultLocale)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("PRODUCT_API_TIMEOUT_MS", "x")
	t.Setenv("LOG_LEVEL", "loud")
	c := Load()
	assert.Equal(t, 15*time.Second, c.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, c.ProductAPITimeout)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
}
