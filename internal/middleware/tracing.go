package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/items-api/internal/server"
)

// TracingMiddleware owns New Relic related Echo middleware.
//
// It has two layers:
//  1. NewRelicMiddleware() installs New Relic transaction handling into Echo
//  2. EnhanceTracing() adds custom attributes and notices errors
//
// nrApp is nil when New Relic is disabled; both layers are then no-ops.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

// NewTracingMiddleware constructs TracingMiddleware.
func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware returns the New Relic Echo middleware, which starts a
// transaction per request and makes newrelic.FromContext work downstream.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing adds client, request ID and status attributes to the
// current transaction and notices returned errors with their stack.
//
// It must run after NewRelicMiddleware.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			// NOTE: user agent can be huge and high-cardinality.
			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())

			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			txn.AddAttribute("http.status_code", c.Response().Status)

			return err
		}
	}
}
