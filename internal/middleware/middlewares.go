package middleware

import (
	"github.com/deppfellow/items-api/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server,
// built once from the application container and reused during router setup.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers,
	// trailing slash handling and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer stores a request-scoped logger in every request.
	ContextEnhancer *ContextEnhancer

	// Tracing installs New Relic transactions and custom attributes.
	Tracing *TracingMiddleware

	// RateLimit limits requests per client IP.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components.
//
// Without New Relic the tracing middleware degrades into a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	nrApp := s.LoggerService.GetApplication()

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
