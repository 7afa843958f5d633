package api

import (
	"os"
	"strconv"
)

// Config holds the remote-store connection settings.
type Config struct {
	Endpoint   string
	TimeoutMs  int
	MaxRetries int // extra attempts for idempotent reads only
	LogCalls   bool
}

// DefaultConfig returns the settings used against a local development server.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "http://localhost:8080/api",
		TimeoutMs:  8000,
		MaxRetries: 1,
		LogCalls:   false,
	}
}

// LoadConfig reads connection settings from environment variables, falling
// back to defaults for any unset value.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("BIDASSIST_API"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("BIDASSIST_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("BIDASSIST_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("BIDASSIST_LOG_CALLS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogCalls = b
		}
	}

	return cfg
}
