package config

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

// Classifier provider names accepted in CLASSIFIER_PROVIDER.
const (
	ClassifierVADER  = "vader"
	ClassifierOpenAI = "openai"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	RedisAddr             string
	CacheEnabled          bool
	CacheTTLMinutes       int
	GRPCPort              int
	GRPCReflectionEnabled bool
	ClassifierProvider    string
	OpenAIAPIKey          string
	OpenAIModel           string
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	portStr := getEnv("GRPC_PORT", "50051")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 50051
	}

	reflectionStr := getEnv("GRPC_REFLECTION_ENABLED", "false")
	reflection, err := strconv.ParseBool(reflectionStr)
	if err != nil {
		reflection = false
	}

	cacheStr := getEnv("CACHE_ENABLED", "true")
	cacheEnabled, err := strconv.ParseBool(cacheStr)
	if err != nil {
		cacheEnabled = true
	}

	ttlStr := getEnv("CACHE_TTL_MINUTES", "10")
	ttl, err := strconv.Atoi(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = 10
	}

	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		CacheEnabled:          cacheEnabled,
		CacheTTLMinutes:       ttl,
		GRPCPort:              port,
		GRPCReflectionEnabled: reflection,
		ClassifierProvider:    getEnv("CLASSIFIER_PROVIDER", ClassifierVADER),
		OpenAIAPIKey:          getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:           getEnv("OPENAI_MODEL", ""),
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
