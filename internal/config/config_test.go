package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Empty(t, cfg.Redis.Address)
	assert.True(t, cfg.RateLimit.Enabled)
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ITEMS_PRIMARY__ENV", "production")
	t.Setenv("ITEMS_SERVER__PORT", "9090")
	t.Setenv("ITEMS_SERVER__READ_TIMEOUT", "5")
	t.Setenv("ITEMS_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("ITEMS_REDIS__ADDRESS", "localhost:6379")
	t.Setenv("ITEMS_RATE_LIMIT__ENABLED", "false")
	t.Setenv("ITEMS_RATE_LIMIT__EXPIRES_IN", "10m")
	t.Setenv("ITEMS_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("ITEMS_OBSERVABILITY__SERVICE_NAME", "ignored")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.ExpiresIn)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero timeout", key: "ITEMS_SERVER__IDLE_TIMEOUT", value: "0"},
		{name: "bad redis address", key: "ITEMS_REDIS__ADDRESS", value: "not an address"},
		{name: "unknown log level", key: "ITEMS_OBSERVABILITY__LOGGING__LEVEL", value: "verbose"},
		{name: "unknown log format", key: "ITEMS_OBSERVABILITY__LOGGING__FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "error"
	assert.Equal(t, "error", cfg.GetLogLevel())
}

func TestHealthCheckEnabled(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.True(t, cfg.HealthCheckEnabled("redis"))
	assert.False(t, cfg.HealthCheckEnabled("database"))

	cfg.HealthChecks.Enabled = false
	assert.False(t, cfg.HealthCheckEnabled("redis"))
}
