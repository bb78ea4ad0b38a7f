package service

import (
	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/server"
)

type GreetingService struct {
	server *server.Server
}

func NewGreetingService(s *server.Server) *GreetingService {
	return &GreetingService{server: s}
}

func (s *GreetingService) Root() *model.MessageResponse {
	return &model.MessageResponse{Message: "Hello World"}
}

func (s *GreetingService) Hello(name string) *model.MessageResponse {
	return &model.MessageResponse{Message: "Hello " + name}
}
