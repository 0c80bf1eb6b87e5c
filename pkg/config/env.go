package config

import (
	"os"
	"strconv"
	"strings"
)

// GetEnv returns the value of an environment variable or a default value if not set
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetBoolEnv returns the boolean value of an environment variable or a default value if not set
func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetIntEnv returns the integer value of an environment variable or a default value if not set
func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// MustGetEnv returns the value of an environment variable or panics if not set
func MustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	panic("Required environment variable " + key + " is not set")
}

// GetHost returns the listen host for the HTTP server
func GetHost() string {
	return GetEnv("HOST", "0.0.0.0")
}

// GetAPIPrefix returns the path prefix all API routes are mounted under
func GetAPIPrefix() string {
	prefix := GetEnv("API_PREFIX", "/api/v1")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return strings.TrimRight(prefix, "/")
}

// GetDataDir returns the directory holding the Pokédex JSON data files
func GetDataDir() string {
	return GetEnv("POKEDEX_DATA_DIR", "data/pokedex")
}

// GetSpriteBaseURL returns the base URL derived sprite links are built from
func GetSpriteBaseURL() string {
	return GetEnv("POKEDEX_SPRITE_BASE_URL", "/media")
}

// GetReloadSchedule returns the cron expression for scheduled data reloads,
// or empty when scheduled reloads are disabled
func GetReloadSchedule() string {
	return GetEnv("POKEDEX_RELOAD_SCHEDULE", "")
}
