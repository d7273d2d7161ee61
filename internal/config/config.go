package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Env       string
	DataDir   string
	StaticDir string

	JWTSecret    string
	ClientAPIKey string

	LLMProvider string
	GeminiKey   string
	OpenAIKey   string

	RateLimitEnabled bool
	RateLimitMax     int
	RateLimitWindow  time.Duration
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  .env file not found, using system environment variables")
	}

	return Config{
		Port:      os.Getenv("PORT"),
		Env:       os.Getenv("ENV"),
		DataDir:   getEnv("DATA_DIR", "data"),
		StaticDir: getEnv("STATIC_DIR", "static"),

		JWTSecret:    getEnv("JWT_SECRET", "lucy-secret-777"),
		ClientAPIKey: getEnv("CLIENT_API_KEY", "dev-client-key"),

		LLMProvider: getEnv("LLM_PROVIDER", "gemini"),
		GeminiKey:   os.Getenv("GOOGLE_API_KEY"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", false),
		RateLimitMax:     getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow:  time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 3600)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
