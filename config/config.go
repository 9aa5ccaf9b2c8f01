package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads the .env file when present. Deployed environments set the
// variables directly, so a missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		fmt.Println(".env not found, reading configuration from environment")
	}
}

type Config struct {
	Port         string
	MongoURI     string
	MongoDBName  string
	AppEnv       string
	LogLevel     string
	SeedDemoData bool
}

// New assembles the runtime configuration from environment variables,
// falling back to local-development defaults.
func New() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:  getEnv("MONGO_DB", "academy"),
		AppEnv:       getEnv("APP_ENV", "production"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		SeedDemoData: getEnv("SEED_DEMO_DATA", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
