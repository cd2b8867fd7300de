package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Secret string // Required: process-wide token signing secret
	Issuer string // Optional: issuer claim for tokens (default: authkit)

	// TokenTTL of zero issues tokens without an expiry, which is the
	// historical behaviour of this flow. Set AUTH_TOKEN_TTL to opt in to
	// expiring tokens.
	TokenTTL time.Duration

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./authkit.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Secret:              os.Getenv("AUTH_SECRET"),
		Issuer:              getEnvOrDefault("AUTH_ISSUER", "authkit"),
		TokenTTL:            getEnvDurationOrDefault("AUTH_TOKEN_TTL", 0),
		DatabaseFile:        getEnvOrDefault("AUTH_DATABASE_FILE", "authkit.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Parse as a duration string (e.g. "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Accept plain integer minutes as well
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
