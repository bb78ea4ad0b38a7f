package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/deppfellow/items-api/internal/logger"
	"github.com/deppfellow/items-api/internal/server"
)

// LoggerKey is used as the key for storing the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer enriches every request with a request-scoped logger
// carrying request_id, method, path, ip and New Relic trace ids.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a new ContextEnhancer using the app Server container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an Echo middleware.
//
// It must run after RequestID and after the New Relic middleware so both
// the request ID and the transaction are available. The logger is stored
// in Echo context and in the request's context.Context.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template, e.g. "/items/:item_id"
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, &contextLogger)

			ctx := logger.NewContext(c.Request().Context(), &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from Echo context.
//
// If EnhanceContext middleware didn't run, it returns a no-op logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
