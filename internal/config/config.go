package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Generative AI API
	AIAPIKey  string
	AIBaseURL string
	AIModel   string

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// Persistence
	DataDir string

	// Workflow tuning
	RepaintDebounce time.Duration
	ProviderTimeout time.Duration

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	cfg := &Config{
		AIAPIKey:  getEnv("AI_API_KEY", ""),
		AIBaseURL: getEnv("AI_API_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/"),
		AIModel:   getEnv("AI_MODEL", "gemini-2.0-flash-exp"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,

		DataDir: getEnv("DATA_DIR", "./data"),

		RepaintDebounce: time.Duration(getEnvInt("REPAINT_DEBOUNCE_MS", 1100)) * time.Millisecond,
		ProviderTimeout: time.Duration(getEnvInt("PROVIDER_TIMEOUT_SECONDS", 60)) * time.Second,

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.AIAPIKey == "" {
		return fmt.Errorf("AI_API_KEY is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.RepaintDebounce <= 0 {
		return fmt.Errorf("REPAINT_DEBOUNCE_MS must be positive")
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
