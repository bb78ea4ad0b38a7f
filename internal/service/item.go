package service

import (
	"context"

	"github.com/deppfellow/items-api/internal/logger"
	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/repository"
	"github.com/deppfellow/items-api/internal/server"
)

// defaultTagQuery is echoed by the tagged listing when no q is sent.
var defaultTagQuery = []string{"foo", "bar"}

type ItemService struct {
	server  *server.Server
	catalog *repository.CatalogRepository
}

func NewItemService(s *server.Server, catalog *repository.CatalogRepository) *ItemService {
	return &ItemService{
		server:  s,
		catalog: catalog,
	}
}

func (s *ItemService) ReadItem(ctx context.Context, req *model.ReadItemRequest) *model.ReadItemResponse {
	res := &model.ReadItemResponse{
		ItemID: req.ItemID,
		Q:      req.Q,
	}
	if !req.Short {
		res.Description = s.catalog.Description(ctx, req.ItemID)
	}
	return res
}

// CreateItem echoes the item back with its defaults applied.
func (s *ItemService) CreateItem(ctx context.Context, item model.Item) *model.Item {
	received := len(item.Tags)
	item.Normalize()

	if dropped := received - len(item.Tags); dropped > 0 {
		logger.FromContext(ctx).Debug().
			Int("dropped_tags", dropped).
			Msg("removed duplicate tags")
	}
	return &item
}

func (s *ItemService) UpdateItem(ctx context.Context, req *model.UpdateItemRequest) *model.UpdateItemResponse {
	return &model.UpdateItemResponse{
		ItemID: req.ItemID,
		Item:   *s.CreateItem(ctx, req.Item),
		Query:  req.Query,
	}
}

func (s *ItemService) ListItems(ctx context.Context, q string) *model.ItemListResponse {
	return &model.ItemListResponse{
		Items: s.catalog.ListItems(ctx),
		Q:     q,
	}
}

func (s *ItemService) ReadBoundedItem(ctx context.Context, req *model.ReadBoundedItemRequest) *model.BoundedItemResponse {
	return &model.BoundedItemResponse{
		ItemID: req.ItemID,
		Q:      req.Q,
	}
}

func (s *ItemService) UpdateEmbeddedItem(ctx context.Context, req *model.UpdateEmbeddedItemRequest) *model.EmbeddedItemResponse {
	return &model.EmbeddedItemResponse{
		ItemID: req.ItemID,
		Item:   *s.CreateItem(ctx, *req.Item),
	}
}

// ListTaggedItems echoes every q value, or the default pair when none was sent.
func (s *ItemService) ListTaggedItems(ctx context.Context, q []string) *model.TaggedItemListResponse {
	if len(q) == 0 {
		q = append([]string(nil), defaultTagQuery...)
	}
	return &model.TaggedItemListResponse{
		Items: s.catalog.ListItems(ctx),
		Q:     q,
	}
}

func (s *ItemService) CreateImages(ctx context.Context, images []model.Image) []model.Image {
	if images == nil {
		return []model.Image{}
	}
	return images
}

func (s *ItemService) CreateOffer(ctx context.Context, offer model.Offer) *model.Offer {
	offer.Normalize()
	return &offer
}
