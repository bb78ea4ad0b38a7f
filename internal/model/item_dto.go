package model

import (
	"encoding/json"

	"github.com/deppfellow/items-api/internal/validation"
)

// ------------------------------------------------------------
// basic routes

type ReadItemRequest struct {
	ItemID string `param:"item_id" validate:"required"`
	Q      string `query:"q"`
	Short  Flag   `query:"short"`
}

func (r *ReadItemRequest) Validate() error {
	return validation.Struct(r)
}

type ReadItemResponse struct {
	ItemID      string `json:"item_id"`
	Q           string `json:"q,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreateItemRequest is an Item sent as the whole body.
type CreateItemRequest struct {
	Item `validate:"-"`
}

func (r *CreateItemRequest) Validate() error {
	return validation.Struct(&r.Item)
}

// UpdateItemRequest carries the Item fields flat in the body.
type UpdateItemRequest struct {
	ItemID int    `param:"item_id" json:"-"`
	Query  string `query:"query" json:"-"`
	Item   `validate:"-"`
}

func (r *UpdateItemRequest) Validate() error {
	return validation.Struct(r, &r.Item)
}

// UpdateItemResponse flattens the item next to its identifier.
type UpdateItemResponse struct {
	ItemID int `json:"item_id"`
	Item
	Query string `json:"query,omitempty"`
}

type ReadItemsRequest struct {
	Q string `query:"q" validate:"max=50"`
}

func (r *ReadItemsRequest) Validate() error {
	return validation.Struct(r)
}

type ItemListResponse struct {
	Items []ItemRef `json:"items"`
	Q     string    `json:"q,omitempty"`
}

// ------------------------------------------------------------
// advanced routes

type ReadBoundedItemRequest struct {
	ItemID int    `param:"item_id" validate:"gt=0,lte=1000"`
	Q      string `query:"item-query"`
}

func (r *ReadBoundedItemRequest) Validate() error {
	return validation.Struct(r)
}

type BoundedItemResponse struct {
	ItemID int    `json:"item_id"`
	Q      string `json:"q,omitempty"`
}

// UpdateEmbeddedItemRequest expects the item under the "item" key:
//
//	{"item": {"name": "Foo", "price": 1.5}}
type UpdateEmbeddedItemRequest struct {
	ItemID int   `param:"item_id" json:"-"`
	Item   *Item `json:"item" validate:"required"`
}

func (r *UpdateEmbeddedItemRequest) Validate() error {
	return validation.Struct(r)
}

type EmbeddedItemResponse struct {
	ItemID int  `json:"item_id"`
	Item   Item `json:"item"`
}

// ReadTaggedItemsRequest accepts a repeated q parameter: ?q=a&q=b.
type ReadTaggedItemsRequest struct {
	Q []string `query:"q" validate:"dive,max=50"`
}

func (r *ReadTaggedItemsRequest) Validate() error {
	return validation.Struct(r)
}

type TaggedItemListResponse struct {
	Items []ItemRef `json:"items"`
	Q     []string  `json:"q"`
}

// CreateImagesRequest is a bare JSON array of images.
type CreateImagesRequest struct {
	Images []Image `json:"-" validate:"dive"`
}

func (r *CreateImagesRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Images)
}

func (r *CreateImagesRequest) Validate() error {
	return validation.Struct(r)
}

type CreateOfferRequest struct {
	Offer `validate:"-"`
}

func (r *CreateOfferRequest) Validate() error {
	return validation.Struct(&r.Offer)
}
