package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
)

// RequestInfoHandler echoes cookies and headers.
type RequestInfoHandler struct {
	Handler
	requestInfoService *service.RequestInfoService
}

func NewRequestInfoHandler(s *server.Server, requestInfoService *service.RequestInfoService) *RequestInfoHandler {
	return &RequestInfoHandler{
		Handler:            NewHandler(s),
		requestInfoService: requestInfoService,
	}
}

func (h *RequestInfoHandler) ReadCookie(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.ReadCookieRequest) (*model.CookieResponse, error) {
			return h.requestInfoService.Cookie(req.AdsID), nil
		},
		http.StatusOK,
	)(c)
}

func (h *RequestInfoHandler) ReadUserAgent(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.ReadUserAgentRequest) (*model.UserAgentResponse, error) {
			return h.requestInfoService.UserAgent(req.UserAgent), nil
		},
		http.StatusOK,
	)(c)
}

func (h *RequestInfoHandler) ReadTokens(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.ReadTokensRequest) (*model.TokensResponse, error) {
			return h.requestInfoService.Tokens(req.XToken), nil
		},
		http.StatusOK,
	)(c)
}
