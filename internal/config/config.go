// Package config handles loading runtime configuration for the Cinna backend.
// Configuration values are read from environment variables rather than being
// hardcoded, following the 12-factor methodology: the same binary runs in dev,
// staging, and production — only the environment changes.
package config

import (
	"os"

	// godotenv reads a .env file and loads its key=value pairs into the process
	// environment. Convenient in development; in production real env vars are
	// set by the deployment platform and no .env file exists.
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port     string // TCP port the HTTP server listens on (e.g. "8080")
	Env      string // Runtime environment: "development", "staging", or "production"
	LogLevel string // zerolog level name: "debug", "info", "warn", "error", ...
}

// Load reads configuration from environment variables and returns a populated
// Config. It first tries to load a .env file for local development; the error
// is intentionally discarded because a missing .env is normal in production.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv returns the value of an environment variable, or fallback if it is
// unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
