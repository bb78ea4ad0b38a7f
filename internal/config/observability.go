package config

import (
	"fmt"
	"slices"
	"time"
)

// ObservabilityConfig groups all configuration related to telemetry and runtime visibility:
//   - logging settings (format, level, thresholds)
//   - APM/tracing provider settings (New Relic)
//   - health check settings
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs/traces/APM dashboards.
	// Always overwritten with config.ServiceName by LoadConfig.
	ServiceName string `koanf:"service_name" validate:"required"`

	// Environment is a label used to split telemetry by environment
	// (production, staging, development, etc.).
	Environment string `koanf:"environment" validate:"required"`

	Logging      LoggingConfig      `koanf:"logging" validate:"required"`
	NewRelic     NewRelicConfig     `koanf:"new_relic"`
	HealthChecks HealthChecksConfig `koanf:"health_checks"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level"`

	// Format selects the output format for logs ("json" or "console").
	Format string `koanf:"format" validate:"required"`

	// SlowRequestThreshold marks handler executions that should be logged
	// as slow. Zero disables the check.
	SlowRequestThreshold time.Duration `koanf:"slow_request_threshold"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
//
// An empty LicenseKey means New Relic is disabled and every integration
// degrades into a no-op.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// HealthChecksConfig controls the dependency checks run by the status endpoint.
type HealthChecksConfig struct {
	Enabled bool `koanf:"enabled"`

	// Timeout is the max time allowed for a single check.
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`

	// Checks lists the dependencies to check. Only "redis" is known.
	Checks []string `koanf:"checks"`
}

// DefaultObservabilityConfig provides the defaults used for local development.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "development",
		Logging: LoggingConfig{
			Level:                "info",
			Format:               "json",
			SlowRequestThreshold: 500 * time.Millisecond,
		},
		NewRelic: NewRelicConfig{
			LicenseKey:                "",
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false, // Disabled by default to avoid mixed log formats
		},
		HealthChecks: HealthChecksConfig{
			Enabled: true,
			Timeout: 5 * time.Second,
			Checks:  []string{"redis"},
		},
	}
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "console"}
)

// Validate applies custom validation rules that go beyond struct tags.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	if c.Logging.Level != "" && !slices.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if !slices.Contains(validFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging format: %s (must be one of: json, console)", c.Logging.Format)
	}

	if c.Logging.SlowRequestThreshold < 0 {
		return fmt.Errorf("logging slow_request_threshold must be non-negative")
	}

	return nil
}

// GetLogLevel returns the effective log level to use at runtime.
//
// An empty level defaults to "info" in production and "debug" anywhere else.
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}
	if c.IsProduction() {
		return "info"
	}
	return "debug"
}

// IsProduction reports whether the application is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

// HealthCheckEnabled reports whether the named dependency check should run.
func (c *ObservabilityConfig) HealthCheckEnabled(name string) bool {
	return c.HealthChecks.Enabled && slices.Contains(c.HealthChecks.Checks, name)
}
