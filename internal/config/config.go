package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port           string
	WebhookURL     string
	WebhookSecret  string
	WebhookTimeout time.Duration
	RegisterRoute  string
	DatabaseURL    string
	RedisURL       string

	// IntentRateLimit caps webhook notifications per client per second.
	// Zero disables the limiter. Only honored when RedisURL is set.
	IntentRateLimit int
	BusyTTL         time.Duration
}

// DefaultWebhookURL is the fixed endpoint notified of purchase intent.
const DefaultWebhookURL = "https://hooks.pawpal.app/webhook/purchase-intent"

// Load reads configuration from environment variables. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to read .env file", "error", err)
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		WebhookURL:      getEnv("WEBHOOK_URL", DefaultWebhookURL),
		WebhookSecret:   getEnv("WEBHOOK_SECRET", ""),
		WebhookTimeout:  getEnvDuration("WEBHOOK_TIMEOUT", 10*time.Second),
		RegisterRoute:   getEnv("REGISTER_ROUTE", "/owner/register"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		IntentRateLimit: getEnvInt("INTENT_RATE_LIMIT", 0),
		BusyTTL:         getEnvDuration("BUSY_TTL", 30*time.Second),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.WebhookURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("WEBHOOK_URL must be an absolute http(s) URL, got %q", c.WebhookURL)
	}
	if c.RegisterRoute == "" || c.RegisterRoute[0] != '/' {
		return fmt.Errorf("REGISTER_ROUTE must be an absolute path, got %q", c.RegisterRoute)
	}
	if c.IntentRateLimit < 0 {
		return fmt.Errorf("INTENT_RATE_LIMIT must not be negative")
	}
	if c.WebhookTimeout < 0 {
		return fmt.Errorf("WEBHOOK_TIMEOUT must not be negative")
	}
	if c.BusyTTL <= 0 {
		return fmt.Errorf("BUSY_TTL must be positive")
	}
	if c.WebhookTimeout > 0 && c.BusyTTL <= c.WebhookTimeout {
		return fmt.Errorf("BUSY_TTL (%s) must exceed WEBHOOK_TIMEOUT (%s)", c.BusyTTL, c.WebhookTimeout)
	}
	return nil
}

// writeTimeoutMargin covers reading the form and writing the redirect.
const writeTimeoutMargin = 15 * time.Second

// ServerWriteTimeout is the HTTP server write deadline. It always outlasts
// the webhook call so the redirect reaches the browser; an unbounded webhook
// call gets no write deadline.
func (c *Config) ServerWriteTimeout() time.Duration {
	if c.WebhookTimeout == 0 {
		return 0
	}
	return c.WebhookTimeout + writeTimeoutMargin
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err == nil {
			return d
		}
	}
	return fallback
}
