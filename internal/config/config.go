// Package config handles loading and validating configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the polyboard binaries.
type Config struct {
	// Upstream CLI
	PolymarketBin string
	FetchTimeout  time.Duration

	// Cache
	CacheTTL time.Duration

	// Web server
	HTTPAddr  string
	StaticDir string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables with fallback to .env file.
// Priority order: Environment variables > .env file > hardcoded defaults
func Load() (*Config, error) {
	// Attempt to load .env file (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		PolymarketBin: getEnv("PM_BIN", "polymarket"),
		FetchTimeout:  time.Duration(getEnvInt("PM_FETCH_TIMEOUT_SECONDS", 60)) * time.Second,

		CacheTTL: time.Duration(getEnvInt("PM_CACHE_TTL", 30)) * time.Second,

		HTTPAddr:  getEnv("PM_HTTP_ADDR", ":8000"),
		StaticDir: getEnv("PM_STATIC_DIR", "./static"),

		LogLevel: getEnv("LOG_LEVEL", "INFO"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set and valid.
func (c *Config) Validate() error {
	if c.PolymarketBin == "" {
		return fmt.Errorf("PM_BIN is required")
	}

	if c.CacheTTL < time.Second {
		return fmt.Errorf("PM_CACHE_TTL must be at least 1 second")
	}

	if c.FetchTimeout < time.Second {
		return fmt.Errorf("PM_FETCH_TIMEOUT_SECONDS must be at least 1 second")
	}

	if c.HTTPAddr == "" {
		return fmt.Errorf("PM_HTTP_ADDR is required")
	}

	return nil
}

// TTLSeconds returns the cache TTL in whole seconds, as reported by the API.
func (c *Config) TTLSeconds() int {
	return int(c.CacheTTL / time.Second)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as an integer or returns a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
