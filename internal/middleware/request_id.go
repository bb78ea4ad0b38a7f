package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the HTTP header carrying the request correlation ID.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the key of the ID in Echo context.
	RequestIDKey = "request_id"
)

// RequestID returns an Echo middleware that ensures each request has a request ID.
//
// An incoming X-Request-ID header is reused, otherwise a new UUID is
// generated. The ID is stored in Echo context and echoed in the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from Echo context.
//
// Returns empty string if not set.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
