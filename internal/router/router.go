// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-api/internal/handler"
	"github.com/deppfellow/items-api/internal/middleware"
	"github.com/deppfellow/items-api/internal/server"
)

// NewRouter builds the Echo instance with the middleware chain and all routes.
//
// Order matters: the request ID must exist before tracing and the context
// logger read it, and the logger must exist before anything logs.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	m := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Pre(m.Global.RemoveTrailingSlash())

	r.Use(
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.Global.Secure(),
		m.Global.CORS(),
		m.RateLimit.Limit(),
	)

	registerSystemRoutes(r, h)
	registerBasicRoutes(r, h)
	registerAdvancedRoutes(r.Group("/v2"), h)

	return r
}
