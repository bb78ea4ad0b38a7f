package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
)

type ItemHandler struct {
	Handler
	itemService *service.ItemService
}

func NewItemHandler(s *server.Server, itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler:     NewHandler(s),
		itemService: itemService,
	}
}

func (h *ItemHandler) ReadItem(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.ReadItemRequest) (*model.ReadItemResponse, error) {
			return h.itemService.ReadItem(c.Request().Context(), req), nil
		},
		http.StatusOK,
	)(c)
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.CreateItemRequest) (*model.Item, error) {
			return h.itemService.CreateItem(c.Request().Context(), req.Item), nil
		},
		http.StatusOK,
	)(c)
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.UpdateItemRequest) (*model.UpdateItemResponse, error) {
			return h.itemService.UpdateItem(c.Request().Context(), req), nil
		},
		http.StatusOK,
	)(c)
}

func (h *ItemHandler) ListItems(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.ReadItemsRequest) (*model.ItemListResponse, error) {
			return h.itemService.ListItems(c.Request().Context(), req.Q), nil
		},
		http.StatusOK,
	)(c)
}

// ReadBoundedItem only accepts identifiers in (0, 1000].
func (h *ItemHandler) ReadBoundedItem(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.ReadBoundedItemRequest) (*model.BoundedItemResponse, error) {
			return h.itemService.ReadBoundedItem(c.Request().Context(), req), nil
		},
		http.StatusOK,
	)(c)
}

func (h *ItemHandler) UpdateEmbeddedItem(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.UpdateEmbeddedItemRequest) (*model.EmbeddedItemResponse, error) {
			return h.itemService.UpdateEmbeddedItem(c.Request().Context(), req), nil
		},
		http.StatusOK,
	)(c)
}

func (h *ItemHandler) ListTaggedItems(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.ReadTaggedItemsRequest) (*model.TaggedItemListResponse, error) {
			return h.itemService.ListTaggedItems(c.Request().Context(), req.Q), nil
		},
		http.StatusOK,
	)(c)
}

func (h *ItemHandler) CreateImages(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.CreateImagesRequest) ([]model.Image, error) {
			return h.itemService.CreateImages(c.Request().Context(), req.Images), nil
		},
		http.StatusOK,
	)(c)
}

func (h *ItemHandler) CreateOffer(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.CreateOfferRequest) (*model.Offer, error) {
			return h.itemService.CreateOffer(c.Request().Context(), req.Offer), nil
		},
		http.StatusOK,
	)(c)
}
