package config

import (
	"os"
	"time"
)

type Config struct {
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	HTTPAddr     string
	GinMode      string
	LogLevel     string
	JWTSecret    string
	TokenTTL     time.Duration
	OpenAIAPIKey string
}

func Load() *Config {
	return &Config{
		DBDriver:     getEnv("DB_DRIVER", "mysql"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "3306"),
		DBUser:       getEnv("DB_USER", "taskbot"),
		DBPassword:   getEnv("DB_PASSWORD", "taskbot"),
		DBName:       getEnv("DB_NAME", "taskbot"),
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		JWTSecret:    getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenTTL:     getDurationEnv("TOKEN_TTL", 24*time.Hour),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
