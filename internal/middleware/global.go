package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/server"
)

// GlobalMiddlewares groups “global” middleware and the global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo’s CORS middleware configured by the server config.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RemoveTrailingSlash makes "/items/" and "/items" the same route.
// It must be registered with e.Pre so it runs before routing.
func (global *GlobalMiddlewares) RemoveTrailingSlash() echo.MiddlewareFunc {
	return middleware.RemoveTrailingSlash()
}

// RequestLogger returns Echo’s request logger middleware writing one
// structured "API" line per request through zerolog.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// When a handler returns an error the final status is only
			// decided later by GlobalErrorHandler, so derive it from the error.
			// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			statusCode := v.Status
			if v.Error != nil {
				statusCode = statusFromError(v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover returns Echo’s panic recovery middleware.
// Panics become errors handled by GlobalErrorHandler (500).
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo’s secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// statusFromError returns the status GlobalErrorHandler will answer with.
func statusFromError(err error) int {
	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &echoErr):
		return echoErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// toHTTPError maps any error into the API error shape.
//
// Unknown errors become a generic 500 so internals never reach the client.
func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusNotFound {
			return errs.NewNotFoundError("Route not found", false, nil)
		}

		message := ""
		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		}
		return errs.FromStatus(echoErr.Code, message)
	}

	return errs.NewInternalServerError()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every error returned by a handler or middleware ends up here, gets
// logged with the request-scoped logger and is rendered as errs.HTTPError.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := toHTTPError(err)

	logger := GetLogger(c)

	event := logger.Warn()
	if httpErr.Status >= http.StatusInternalServerError {
		event = logger.Error().Stack()
	}
	event.
		Err(err).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, httpErr)
}
