package service

import (
	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/server"
)

type ModelService struct {
	server *server.Server
}

func NewModelService(s *server.Server) *ModelService {
	return &ModelService{server: s}
}

// Describe returns the message of a model. Anything that is neither
// alexnet nor lenet gets the residual network message.
func (s *ModelService) Describe(name model.ModelName) *model.ModelResponse {
	var message string
	switch name {
	case model.ModelAlexNet:
		message = "Deep Learning FTW!"
	case model.ModelLeNet:
		message = "LeCNN all the images"
	default:
		message = "Have some residuals"
	}

	return &model.ModelResponse{
		ModelName: name,
		Message:   message,
	}
}
