package handler

import (
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Health      *HealthHandler
	OpenAPI     *OpenAPIHandler
	Greeting    *GreetingHandler
	Item        *ItemHandler
	RequestInfo *RequestInfoHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		OpenAPI:     NewOpenAPIHandler(s),
		Greeting:    NewGreetingHandler(s, services.Greeting, services.Model),
		Item:        NewItemHandler(s, services.Item),
		RequestInfo: NewRequestInfoHandler(s, services.RequestInfo),
	}
}
