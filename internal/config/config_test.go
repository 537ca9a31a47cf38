package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.RateLimitMax)
	assert.Equal(t, time.Hour, cfg.RateLimitWindow)
	assert.Equal(t, "contact@localhost", cfg.ContactEmail)
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.MailEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "30m")
	t.Setenv("REDIS_URL", "rediss://example.upstash.io:6379")
	t.Setenv("REDIS_TOKEN", "secret")
	t.Setenv("RESEND_API_KEY", "re_123")
	t.Setenv("CONTACT_EMAIL", "me@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5, cfg.RateLimitMax)
	assert.Equal(t, 30*time.Minute, cfg.RateLimitWindow)
	assert.True(t, cfg.RedisEnabled())
	assert.True(t, cfg.MailEnabled())
	assert.Equal(t, "me@example.com", cfg.ContactEmail)
}

func TestLoadRejectsInvalidQuota(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))
	t.Setenv("RATE_LIMIT_MAX", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestRedisEnabledNeedsBothValues(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))
	t.Setenv("REDIS_URL", "rediss://example.upstash.io:6379")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.RedisEnabled(), "URL without token must not enable the durable backend")
}
