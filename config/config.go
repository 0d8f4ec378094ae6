package config

import (
	"context"
	"os"
	"time"
)

// BackendAPIURL returns the base URL of the platform REST backend.
// Absent value defaults to the local development backend.
func BackendAPIURL() string {
	return getEnv("BACKEND_API_URL", "http://localhost:5000/api")
}

// Port returns the listen port for the gateway itself.
func Port() string {
	return getEnv("PORT", "8082")
}

// WithTimeout returns a context with the default upstream call timeout.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
