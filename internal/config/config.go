// Package config handles application configuration loading and validation
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBPath string
	Debug  bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		DBPath: os.Getenv("DB_PATH"),
		Debug:  os.Getenv("DEBUG") == "true",
	}

	if cfg.DBPath == "" {
		cfg.DBPath = "movie_booking.db" // Default value
	}

	return cfg, nil
}
