package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/static"
)

// OpenAPIHandler serves the API reference page. The page loads its UI
// from a CDN and reads /static/openapi.json.
type OpenAPIHandler struct {
	Handler
	assets fs.FS
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		assets:  static.FS,
	}
}

// ServeOpenAPIUI serves openapi.html with caching disabled.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := fs.ReadFile(h.assets, "openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
