package config

import (
	"os"
	"strconv"
)

// GlobalConfig holds settings shared by every service.
type GlobalConfig struct {
	ServerPort   string
	LogLevel     string
	JWTSecretKey string
}

func LoadGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		ServerPort:   GetEnv("SERVER_PORT"),
		LogLevel:     GetEnvOrDefault("LOG_LEVEL", "info"),
		JWTSecretKey: GetEnv("JWT_SECRET_KEY"),
	}
}

// GetEnv retrieves the value of the environment variable named by the key.
func GetEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	} else {
		panic("critical config missing: " + key)
	}
}

// GetEnvOrDefault retrieves the value or returns default if not set.
func GetEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt parses an integer variable, falling back to defaultValue when unset or malformed.
func GetEnvInt(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
