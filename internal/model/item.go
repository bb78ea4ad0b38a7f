package model

import "github.com/shopspring/decimal"

// Item is the main payload of the item routes.
type Item struct {
	Name        string           `json:"name" validate:"required,max=50"`
	Description *string          `json:"description" validate:"omitempty,max=300"`
	Price       decimal.Decimal  `json:"price" validate:"decimal_bounded,decimal_gt=0,decimal_lte=1000000000"`
	Tax         *decimal.Decimal `json:"tax" validate:"omitempty,decimal_bounded,decimal_lte=1000000000"`
	Tags        []string         `json:"tags" validate:"dive,required"`
	Images      []Image          `json:"images" validate:"omitempty,dive"`
}

// Normalize fills defaults and turns Tags into a set, keeping the first
// occurrence of every tag in order.
func (i *Item) Normalize() {
	seen := make(map[string]struct{}, len(i.Tags))
	tags := make([]string, 0, len(i.Tags))
	for _, tag := range i.Tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	i.Tags = tags
}

// Image is a picture attached to an item.
type Image struct {
	URL  string `json:"url" validate:"required,url"`
	Name string `json:"name" validate:"required"`
}

// Offer groups several items under one price.
type Offer struct {
	Name        string          `json:"name" validate:"required"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"decimal_bounded,decimal_gt=0,decimal_lte=1000000000"`
	Items       []Item          `json:"items" validate:"dive"`
}

// Normalize normalizes every item of the offer.
func (o *Offer) Normalize() {
	if o.Items == nil {
		o.Items = []Item{}
	}
	for i := range o.Items {
		o.Items[i].Normalize()
	}
}

// ItemRef is an entry of the canned item catalog.
type ItemRef struct {
	ItemID string `json:"item_id"`
}
