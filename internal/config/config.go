package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	// Server
	HTTPAddr string
	LogLevel string

	// Database
	DatabaseURL string

	// Gemini API (agent engine)
	GeminiAPIKey      string
	GeminiModelChat   string // conversational agent, e.g. gemini-2.5-flash
	GeminiModelSearch string // search summarization, e.g. gemini-2.5-flash-lite

	// Web search tool
	SearchMaxResults int
	SearchUserAgent  string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8001"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModelChat:   getEnv("GEMINI_MODEL_CHAT", "gemini-2.5-flash"),
		GeminiModelSearch: getEnv("GEMINI_MODEL_SEARCH", "gemini-2.5-flash-lite"),

		SearchMaxResults: clampMin(getEnvInt("SEARCH_MAX_RESULTS", 5), 1),
		SearchUserAgent:  getEnv("SEARCH_USER_AGENT", "agents-api/1.0"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// clampMin returns v if v >= min, otherwise min. Used to ensure config values are in valid range.
func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}
