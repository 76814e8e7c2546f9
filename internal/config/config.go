// Package config manages application configuration
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// DataDir is where exported sheet tabs (CSV files) are read from.
	DataDir string

	// DatabaseURL is the sqlite file holding the latest sync results.
	DatabaseURL string

	// BaseCurrency is the reporting currency for rendered summaries.
	BaseCurrency string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DataDir:      getEnv("SHEETFOLIO_DATA_DIR", "data"),
		DatabaseURL:  getEnv("SHEETFOLIO_DATABASE_URL", "sheetfolio.db"),
		BaseCurrency: getEnv("SHEETFOLIO_CURRENCY", "USD"),
		LogLevel:     getEnv("SHEETFOLIO_LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
