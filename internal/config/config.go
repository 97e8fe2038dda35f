package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabasePath string
	Port         string
	LogLevel     string
	UserID       string
	APIToken     string
	FeedToken    string
}

// Load reads configuration from the environment, after sourcing a local
// .env file if one exists. Every key has a workable default; the tracker
// runs with no configuration at all.
func Load() (Config, error) {
	godotenv.Load()

	config := Config{
		DatabasePath: envOrDefault("DATABASE_PATH", "./data/wegovy.db"),
		Port:         envOrDefault("PORT", "8080"),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
		UserID:       envOrDefault("USER_ID", "default"),
		APIToken:     os.Getenv("API_TOKEN"),
		FeedToken:    os.Getenv("FEED_TOKEN"),
	}

	return config, nil
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
