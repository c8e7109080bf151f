package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "ENVIRONMENT", "SESSION_TTL", "FORM_RATE_LIMIT", "HTMX_ENABLED", "BRAND_NAME"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "Pulse", cfg.BrandName)
	assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
	assert.Equal(t, DefaultFormRateLimit, cfg.FormRateLimit)
	assert.True(t, cfg.HTMXEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("FORM_RATE_LIMIT", "5")
	t.Setenv("HTMX_ENABLED", "off")

	cfg := Load()
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 5, cfg.FormRateLimit)
	assert.False(t, cfg.HTMXEnabled)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("FORM_RATE_LIMIT", "-3")
	t.Setenv("HTMX_ENABLED", "maybe")

	assert.Equal(t, DefaultSessionTTL, getEnvDuration("SESSION_TTL", DefaultSessionTTL))
	assert.Equal(t, DefaultFormRateLimit, getEnvInt("FORM_RATE_LIMIT", DefaultFormRateLimit))
	assert.True(t, getEnvBool("HTMX_ENABLED", true))
}
