package service

import (
	"github.com/deppfellow/items-api/internal/repository"
	"github.com/deppfellow/items-api/internal/server"
)

type Services struct {
	Greeting    *GreetingService
	Model       *ModelService
	Item        *ItemService
	RequestInfo *RequestInfoService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Greeting:    NewGreetingService(s),
		Model:       NewModelService(s),
		Item:        NewItemService(s, repos.Catalog),
		RequestInfo: NewRequestInfoService(s),
	}
}
