package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-api/internal/handler"
)

// registerBasicRoutes mounts the root route set. Paths are registered
// without a trailing slash; RemoveTrailingSlash makes both forms match.
func registerBasicRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Greeting.Root)
	r.GET("/hello/:name", h.Greeting.SayHello)
	r.GET("/models/:model_name", h.Greeting.GetModel)

	items := r.Group("/items")
	items.GET("", h.Item.ListItems)
	items.POST("", h.Item.CreateItem)
	items.GET("/:item_id", h.Item.ReadItem)
	items.PUT("/:item_id", h.Item.UpdateItem)
}

// registerAdvancedRoutes mounts the stricter route set under g.
func registerAdvancedRoutes(g *echo.Group, h *handler.Handlers) {
	items := g.Group("/items")
	items.GET("", h.Item.ListTaggedItems)
	items.POST("", h.Item.CreateItem)
	items.GET("/:item_id", h.Item.ReadBoundedItem)
	items.PUT("/:item_id", h.Item.UpdateEmbeddedItem)

	g.POST("/images/multiple", h.Item.CreateImages)
	g.POST("/offers", h.Item.CreateOffer)

	g.GET("/cookies", h.RequestInfo.ReadCookie)
	g.GET("/headers", h.RequestInfo.ReadUserAgent)
	g.GET("/headers/multi", h.RequestInfo.ReadTokens)
}
