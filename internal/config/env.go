package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds runtime settings read from environment variables. A .env file
// in the working directory is loaded automatically; variables already set
// in the environment take precedence.
type Env struct {
	OllamaBaseURL string
	EmbedModel    string
	LogLevel      slog.Level
	LogFormat     string // "text" or "json"
}

// LoadEnv reads environment overrides, applying defaults for anything unset.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		EmbedModel:    getEnv("NOEMA_EMBED_MODEL", "nomic-embed-text"),
		LogLevel:      parseLevel(getEnv("NOEMA_LOG_LEVEL", "info")),
		LogFormat:     getEnv("NOEMA_LOG_FORMAT", "text"),
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
