package repository

import (
	"context"

	"github.com/deppfellow/items-api/internal/logger"
	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/server"
)

// LongDescription is attached to items read without the short flag.
const LongDescription = "This is an amazing item that has a long description"

var cannedItems = []model.ItemRef{
	{ItemID: "foo"},
	{ItemID: "bar"},
}

// CatalogRepository serves the fixed item listing.
type CatalogRepository struct {
	server *server.Server
}

func NewCatalogRepository(s *server.Server) *CatalogRepository {
	return &CatalogRepository{server: s}
}

// ListItems returns a copy of the canned listing, so callers may modify it.
func (r *CatalogRepository) ListItems(ctx context.Context) []model.ItemRef {
	items := make([]model.ItemRef, len(cannedItems))
	copy(items, cannedItems)

	logger.FromContext(ctx).Debug().Int("count", len(items)).Msg("listed catalog items")
	return items
}

// Description returns the long description of an item. Every item shares it.
func (r *CatalogRepository) Description(ctx context.Context, itemID string) string {
	return LongDescription
}
