// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env`
// file when present), loads them into structured Go types and
// validates them so the app fails fast on bad config.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate values so the app fails fast on bad/missing config.
//   - Provide sane defaults so the service runs with an empty environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env before
	// anything below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix every recognised environment variable carries.
	EnvPrefix = "ITEMS_"

	// ServiceName identifies the service in logs and APM dashboards.
	ServiceName = "items-api"
)

/*
	Env vars are mapped to koanf keys like this:

	  ITEMS_SERVER__READ_TIMEOUT -> server.read_timeout -> Config.Server.ReadTimeout

	The prefix is stripped, the rest is lowercased and a double underscore
	marks one level of nesting. Single underscores stay part of the key.
*/

// listKeys are keys whose env value is a comma separated list.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":        true,
	"observability.health_checks.checks": true,
}

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	RateLimit     RateLimitConfig      `koanf:"rate_limit"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// RedisConfig contains Redis connection details.
// An empty Address means Redis is not used and rate limit counters stay in memory.
type RedisConfig struct {
	Address string `koanf:"address" validate:"omitempty,hostname_port"`
}

// RateLimitConfig controls the per-client request limiter.
//
// Rate is requests per second and Burst the bucket size of the in-memory
// store, which forgets a client after ExpiresIn. The Redis store counts
// requests per one second window and allows Burst of them.
type RateLimitConfig struct {
	Enabled   bool          `koanf:"enabled"`
	Rate      float64       `koanf:"rate" validate:"gt=0"`
	Burst     int           `koanf:"burst" validate:"min=1"`
	ExpiresIn time.Duration `koanf:"expires_in" validate:"min=1s"`
}

// DefaultConfig returns the configuration used when no env var overrides a value.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		RateLimit: RateLimitConfig{
			Enabled:   true,
			Rate:      20,
			Burst:     40,
			ExpiresIn: 3 * time.Minute,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// envKey converts a raw env var name into a koanf key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// LoadConfig loads configuration from environment variables on top of
// DefaultConfig, validates it and returns the result.
//
// Service name and environment of the observability block are always
// derived from the primary config, whatever the env says.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = envKey(key)
		if listKeys[key] {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return key, parts
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := DefaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
