package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogFile     string `env:"LOG_FILE"`

	// Origin allow-list (comma-separated, wildcard-capable,
	// e.g. "https://example.com,https://*.example.com")
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,https://latest-portfolio.vercel.app"`

	// Per-client fixed-window rate limit
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"10"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`

	// Process-global token bucket, secondary guard in front of the
	// per-client limiter
	GlobalRPS   int `env:"GLOBAL_RPS" envDefault:"10"`
	GlobalBurst int `env:"GLOBAL_BURST" envDefault:"20"`

	// Notification sink configuration. Telegram wins when both are set.
	FormspreeID      string `env:"FORMSPREE_ID" envDefault:"mqeeakbd"`
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`

	// Document sink configuration. Either the raw service-account JSON or a
	// path to it; both absent disables the Firestore sink.
	FirebaseServiceAccountKey string `env:"FIREBASE_SERVICE_ACCOUNT_KEY"`
	FirebaseCredentialsFile   string `env:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseProjectID         string `env:"FIREBASE_PROJECT_ID"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists. Try multiple locations; godotenv does not
	// overwrite variables that are already set.
	envLocations := []string{
		"internal/config/env/.env.production",
		"internal/config/env/.env.development",
		".env",
	}

	// If ENV is set, try to load that specific file first
	envName := os.Getenv("ENV")
	if envName != "" {
		envLocations = append([]string{fmt.Sprintf("internal/config/env/.env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.RateLimitMax <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", cfg.RateLimitMax)
	}
	if cfg.RateLimitWindow <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", cfg.RateLimitWindow)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	return cfg, nil
}

// DocumentSinkConfigured reports whether Firestore credentials are present.
func (c *Config) DocumentSinkConfigured() bool {
	return c.FirebaseServiceAccountKey != "" || c.FirebaseCredentialsFile != ""
}

// TelegramConfigured reports whether the Telegram notification sink is usable.
func (c *Config) TelegramConfigured() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}
