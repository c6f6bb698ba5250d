package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, []string{"http://localhost:3000", "https://latest-portfolio.vercel.app"}, cfg.AllowedOrigins)
	assert.False(t, cfg.DocumentSinkConfigured())
	assert.False(t, cfg.TelegramConfigured())
	assert.NotEmpty(t, cfg.LogFile)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://a.test,https://*.b.test")
	t.Setenv("RATE_LIMIT_MAX", "3")
	t.Setenv("RATE_LIMIT_WINDOW", "1h")
	t.Setenv("FIREBASE_CREDENTIALS_FILE", "sa.json")
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.test", "https://*.b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 3, cfg.RateLimitMax)
	assert.Equal(t, time.Hour, cfg.RateLimitWindow)
	assert.True(t, cfg.DocumentSinkConfigured())
	assert.True(t, cfg.TelegramConfigured())
}

func TestLoadRejectsNonPositiveLimits(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "0")

	_, err := Load()
	require.Error(t, err)
}
