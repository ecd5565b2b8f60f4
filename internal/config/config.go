package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string

	TelegramToken string

	BackendBaseURL string
	BackendAPIKey  string

	DatabaseURL string

	RedisURL string

	OpenAIAPIKey string

	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool

	FrameSettleDelay time.Duration
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		TelegramToken: getEnv("TELEGRAM_TOKEN", ""),

		BackendBaseURL: getEnv("SUPABASE_URL", ""),
		BackendAPIKey:  getEnv("SUPABASE_KEY", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisURL: getEnv("REDIS_URL", ""),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),

		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", ""),
		StorageBucket:    getEnv("SUPABASE_BUCKET_NAME", "memories"),
		StorageUseSSL:    getBoolEnv("STORAGE_USE_SSL", true),

		FrameSettleDelay: getDurationEnv("FRAME_SETTLE_DELAY", 500*time.Millisecond),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
