// Package logger configure the application's logging,
// monitoring, and observability.
//
// It uses *ZeroLog* for logging and integrates with
// *New Relic* to instrument the codebase, forwarding logs,
// metrics, and traces for debugging
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/deppfellow/items-api/internal/config"
)

// LoggerService owns the New Relic application instance.
//
// The zero value (nrApp == nil) is valid and means New Relic is disabled.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService creates a LoggerService and starts the New Relic agent
// when a license key is configured.
//
// A failing agent does not stop startup: the service is returned without
// an application and the error is returned for the caller to log.
func NewLoggerService(cfg *config.ObservabilityConfig) (*LoggerService, error) {
	service := &LoggerService{}

	if cfg.NewRelic.LicenseKey == "" {
		return service, nil
	}

	configOptions := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(cfg.NewRelic.DistributedTracingEnabled),
	}

	// Agent debug output goes to stdout, mixing formats with zerolog.
	if cfg.NewRelic.DebugLogging {
		configOptions = append(configOptions, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(configOptions...)
	if err != nil {
		return service, err
	}

	service.nrApp = app
	return service, nil
}

// GetApplication returns the New Relic application, or nil when disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.nrApp
}

// Shutdown flushes pending New Relic data, waiting at most timeout.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if ls != nil && ls.nrApp != nil {
		ls.nrApp.Shutdown(timeout)
	}
}

// NewLogger builds the main application logger.
//
// Production with JSON format writes JSON to stdout, decorated by the
// New Relic zerolog writer when the agent runs. Every other combination
// uses the human friendly console writer.
func NewLogger(cfg *config.ObservabilityConfig, loggerService *LoggerService) zerolog.Logger {
	return newLogger(cfg, loggerService, os.Stdout)
}

func newLogger(cfg *config.ObservabilityConfig, loggerService *LoggerService, out io.Writer) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var writer io.Writer
	if cfg.IsProduction() && cfg.Logging.Format == "json" {
		writer = out
		if app := loggerService.GetApplication(); app != nil {
			writer = zerologWriter.New(out, app)
		}
	} else if cfg.Logging.Format == "json" {
		writer = out
	} else {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime}
	}

	logger := zerolog.New(writer).
		Level(logLevel).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()

	if !cfg.IsProduction() {
		logger = logger.With().Stack().Logger()
	}

	return logger
}

// WithTraceContext adds New Relic trace.id and span.id fields to logger.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	metadata := txn.GetTraceMetadata()
	return logger.With().
		Str("trace.id", metadata.TraceID).
		Str("span.id", metadata.SpanID).
		Logger()
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored by NewContext, or a no-op logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
