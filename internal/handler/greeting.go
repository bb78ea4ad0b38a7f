package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
)

// GreetingHandler serves the root and hello routes.
type GreetingHandler struct {
	Handler
	greetingService *service.GreetingService
	modelService    *service.ModelService
}

func NewGreetingHandler(s *server.Server, greetingService *service.GreetingService, modelService *service.ModelService) *GreetingHandler {
	return &GreetingHandler{
		Handler:         NewHandler(s),
		greetingService: greetingService,
		modelService:    modelService,
	}
}

func (h *GreetingHandler) Root(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.EmptyRequest) (*model.MessageResponse, error) {
			return h.greetingService.Root(), nil
		},
		http.StatusOK,
	)(c)
}

func (h *GreetingHandler) SayHello(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.SayHelloRequest) (*model.MessageResponse, error) {
			return h.greetingService.Hello(req.Name), nil
		},
		http.StatusOK,
	)(c)
}

// GetModel answers for one of the known model names; other values are
// rejected by GetModelRequest.Validate.
func (h *GreetingHandler) GetModel(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.GetModelRequest) (*model.ModelResponse, error) {
			return h.modelService.Describe(req.ModelName), nil
		},
		http.StatusOK,
	)(c)
}
