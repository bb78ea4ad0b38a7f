package model

import (
	"strings"

	"github.com/deppfellow/items-api/internal/validation"
)

// EmptyRequest is the payload of routes that read nothing from the request.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

type SayHelloRequest struct {
	Name string `param:"name" validate:"required"`
}

func (r *SayHelloRequest) Validate() error {
	return validation.Struct(r)
}

type MessageResponse struct {
	Message string `json:"message"`
}

type GetModelRequest struct {
	ModelName ModelName `param:"model_name"`
}

func (r *GetModelRequest) Validate() error {
	if r.ModelName.Valid() {
		return nil
	}

	names := make([]string, len(ModelNames))
	for i, name := range ModelNames {
		names[i] = string(name)
	}
	return validation.CustomValidationErrors{{
		Field:   "model_name",
		Message: "must be one of: " + strings.Join(names, ", "),
	}}
}

type ModelResponse struct {
	ModelName ModelName `json:"model_name"`
	Message   string    `json:"message"`
}
