package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSecretKey is the development fallback for signing session
// cookies. Production deployments must set SECRET_KEY.
const DefaultSecretKey = "supersecretkey"

type Config struct {
	// Server
	Port string
	Env  string

	// Sessions
	SecretKey  string
	SessionTTL time.Duration

	// Redis (optional; transcripts live in process memory when unset)
	RedisURL string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:         getEnvOrDefault("PORT", "8080"),
		Env:          getEnvOrDefault("ENV", "development"),
		SecretKey:    getEnvOrDefault("SECRET_KEY", DefaultSecretKey),
		SessionTTL:   getEnvAsDurationOrDefault("SESSION_TTL", 24*time.Hour),
		RedisURL:     getEnvOrDefault("REDIS_URL", ""),
		GeminiAPIKey: mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-flash-latest"),
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

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
