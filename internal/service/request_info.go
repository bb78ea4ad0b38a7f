package service

import (
	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/server"
)

// RequestInfoService echoes cookies and headers back to the client.
type RequestInfoService struct {
	server *server.Server
}

func NewRequestInfoService(s *server.Server) *RequestInfoService {
	return &RequestInfoService{server: s}
}

func (s *RequestInfoService) Cookie(adsID *string) *model.CookieResponse {
	return &model.CookieResponse{AdsID: adsID}
}

// UserAgent reports an empty header as absent.
func (s *RequestInfoService) UserAgent(userAgent string) *model.UserAgentResponse {
	if userAgent == "" {
		return &model.UserAgentResponse{}
	}
	return &model.UserAgentResponse{UserAgent: &userAgent}
}

func (s *RequestInfoService) Tokens(tokens []string) *model.TokensResponse {
	if len(tokens) == 0 {
		return &model.TokensResponse{}
	}
	return &model.TokensResponse{XToken: tokens}
}
