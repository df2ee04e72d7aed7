// Package config provides runtime configuration values for the service.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds configuration knobs for the HTTP server and the upstream product API.
type Config struct {
	HTTPAddr          string
	ShutdownTimeout   time.Duration
	ProductAPIBaseURL string
	ProductAPITimeout time.Duration
	DefaultLocale     string
	LogLevel          slog.Level
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvms(key string, defMs int) time.Duration {
	ms := atoienv(key, defMs)
	return time.Duration(ms) * time.Millisecond
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

func levelenv(key string, def slog.Level) slog.Level {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		return def
	}
	return lvl
}

// Load collects configuration from environment with defaults. A .env file in the working
// directory is read first when present; variables already set in the environment win.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		HTTPAddr:          getenv("HTTP_ADDR", ":3000"),
		ShutdownTimeout:   durenvs("SHUTDOWN_TIMEOUT", 15),
		ProductAPIBaseURL: strings.TrimRight(getenv("PRODUCT_API_BASE_URL", "http://localhost:8080"), "/"),
		ProductAPITimeout: durenvms("PRODUCT_API_TIMEOUT_MS", 10000),
		DefaultLocale:     getenv("DEFAULT_LOCALE", "en-US"),
		LogLevel:          levelenv("LOG_LEVEL", slog.LevelInfo),
	}
}
