package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// LLM provider
	LLMProvider       string // "openai" or "gemini"
	OpenAIAPIKey      string
	GeminiAPIKey      string
	LLMConcurrentReqs int

	// Conversation history
	ChatStore         string // "memory", "redis" or "postgres"
	RedisURL          string
	DatabaseURL       string
	HistoryTTLMinutes int

	// Rate limiting
	ChatRequestsPerMin int

	// CORS
	AllowedOrigin string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:               getEnvOrDefault("PORT", "5000"),
		Env:                getEnvOrDefault("ENV", "development"),
		LLMProvider:        strings.ToLower(getEnvOrDefault("LLM_PROVIDER", "openai")),
		LLMConcurrentReqs:  getEnvAsIntOrDefault("LLM_CONCURRENT_REQUESTS", 5),
		ChatStore:          strings.ToLower(getEnvOrDefault("CHAT_STORE", "memory")),
		RedisURL:           getEnvOrDefault("REDIS_URL", ""),
		DatabaseURL:        getEnvOrDefault("DATABASE_URL", ""),
		HistoryTTLMinutes:  getEnvAsIntOrDefault("CHAT_HISTORY_TTL_MINUTES", 720),
		ChatRequestsPerMin: getEnvAsIntOrDefault("CHAT_REQUESTS_PER_MINUTE", 30),
		AllowedOrigin:      getEnvOrDefault("ALLOWED_ORIGIN", "*"),
	}

	switch cfg.LLMProvider {
	case "openai":
		cfg.OpenAIAPIKey = mustGetEnv("OPENAI_API_KEY")
	case "gemini":
		cfg.GeminiAPIKey = mustGetEnv("GEMINI_API_KEY")
	default:
		panic(fmt.Sprintf("unknown LLM_PROVIDER %q (want openai or gemini)", cfg.LLMProvider))
	}

	switch cfg.ChatStore {
	case "memory":
	case "redis":
		cfg.RedisURL = mustGetEnv("REDIS_URL")
	case "postgres":
		cfg.DatabaseURL = mustGetEnv("DATABASE_URL")
	default:
		panic(fmt.Sprintf("unknown CHAT_STORE %q (want memory, redis or postgres)", cfg.ChatStore))
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
