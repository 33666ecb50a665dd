package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port string
	Env  string

	// Session store. RedisURL is required: conversational continuity is
	// essential, so a missing backend is fatal at startup.
	RedisURL       string
	RedisKeyPrefix string
	SessionTTL     time.Duration

	// Generation
	OpenAIAPIKey string
	OpenAIModel  string

	// Router
	ContextMessageLimit int
	AllowedOrigins      []string
	RateLimitPerMinute  int
}

// Load reads configuration from environment variables. In development it
// loads from a .env file if present.
func Load() *Config {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8000"),
		Env:                 getEnv("ENV", "development"),
		RedisURL:            getEnv("REDIS_URL", "redis://localhost:6379"),
		RedisKeyPrefix:      getEnv("REDIS_KEY_PREFIX", "sindico_pro:"),
		SessionTTL:          time.Duration(getEnvInt("SESSION_TTL_DAYS", 30)) * 24 * time.Hour,
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:         os.Getenv("OPENAI_MODEL"),
		ContextMessageLimit: getEnvInt("CONTEXT_MESSAGE_LIMIT", 10),
		RateLimitPerMinute:  getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
	}

	// Parse allowed origins (comma-separated)
	for _, origin := range strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	// In production, require the session store and generator credentials;
	// the localhost Redis default is a development convenience only.
	if cfg.Env == "production" {
		if os.Getenv("REDIS_URL") == "" {
			panic("REDIS_URL is required in production")
		}
		if cfg.OpenAIAPIKey == "" {
			panic("OPENAI_API_KEY is required in production")
		}
	}

	return cfg
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
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
