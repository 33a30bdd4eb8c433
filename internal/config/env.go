package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the given files, ".env" when none
// are given. Missing files are skipped and variables already set in the
// process environment win.
func LoadEnv(files ...string) []string {
	if len(files) == 0 {
		files = []string{".env"}
	}

	loaded := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			slog.Warn("failed to load env file", "file", file, "error", err)
			continue
		}
		loaded = append(loaded, file)
	}

	if len(loaded) == 0 {
		slog.Debug("no env files loaded, relying on process environment")
	} else {
		slog.Debug("loaded env files", "files", loaded)
	}
	return loaded
}

// GetEnv gets an environment variable with a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvBool gets a boolean environment variable with a default value
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetEnvDuration gets a duration environment variable with a default value
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
