package model

import "github.com/deppfellow/items-api/internal/validation"

type ReadCookieRequest struct {
	AdsID *string `cookie:"ads_id"`
}

func (r *ReadCookieRequest) Validate() error {
	return validation.Struct(r)
}

type CookieResponse struct {
	AdsID *string `json:"ads_id"`
}

type ReadUserAgentRequest struct {
	UserAgent string `header:"User-Agent"`
}

func (r *ReadUserAgentRequest) Validate() error {
	return validation.Struct(r)
}

// UserAgentResponse echoes the header under its wire name; null when absent.
type UserAgentResponse struct {
	UserAgent *string `json:"User-Agent"`
}

// ReadTokensRequest collects every X-Token header of the request.
type ReadTokensRequest struct {
	XToken []string `header:"X-Token"`
}

func (r *ReadTokensRequest) Validate() error {
	return validation.Struct(r)
}

type TokensResponse struct {
	XToken []string `json:"X-Token values"`
}
