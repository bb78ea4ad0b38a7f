// Package model declares the request and response shapes served by the API.
//
// The types are passive: field constraints live in `validate` tags and are
// enforced by the validation package before any handler runs.
package model

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
