package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	// Transport selects how the server is exposed: "stdio" or "sse".
	Transport string

	// Port is the listen port for the SSE transport.
	Port string

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Transport: strings.ToLower(getEnvOrDefault("CALC_TRANSPORT", "stdio")),
		Port:      getEnvOrDefault("CALC_PORT", "8080"),
		LogLevel:  getEnvOrDefault("CALC_LOG_LEVEL", "info"),
		LogFormat: strings.ToLower(getEnvOrDefault("CALC_LOG_FORMAT", "text")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Transport {
	case "stdio", "sse":
	default:
		return fmt.Errorf("unknown transport: %s (must be stdio or sse)", c.Transport)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s (must be text or json)", c.LogFormat)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
