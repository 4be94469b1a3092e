package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DataFile    string
	ServerPort  string
	BaseURL     string
	JWTSecret   string
	Environment string
}

var AppConfig *Config

func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// .env file is optional, continue without it
	}

	AppConfig = &Config{
		DataFile:    getEnv("DATA_FILE", "data/db.json"),
		ServerPort:  getEnv("PORT", "5000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:5000/api"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
