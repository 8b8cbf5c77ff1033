package notify

import (
	"os"
	"strconv"
)

// Config holds all configuration for outbound submission notifications.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns a Config with sensible defaults.
// Notifications are disabled by default.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "https://formspree.io/f/mkovvjjw",
		TimeoutMs:  8000,
		MaxRetries: 1,
	}
}

// LoadConfig reads notifier configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("BRIEFSMITH_NOTIFY_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("BRIEFSMITH_NOTIFY_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("BRIEFSMITH_NOTIFY_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("BRIEFSMITH_NOTIFY_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("BRIEFSMITH_NOTIFY_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
