package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper to read an env var with a fallback. Every setting has a
	// sensible local default, so nothing here is fatal.
	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		return fallback
	}

	cfg := Config{
		DataDir:     getEnv("CALCETTO_DATA_DIR", "./data"),
		MockDataDir: getEnv("CALCETTO_MOCK_DATA_DIR", "./data_mock"),
		Port:        getEnv("PORT", "8080"),
	}
	return cfg
}
