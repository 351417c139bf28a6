package handler

import (
	"github.com/deppfellow/flats-api/internal/server"
	"github.com/deppfellow/flats-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup takes a single value.
type Handlers struct {
	Flat    *FlatHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Flat:    NewFlatHandler(s, services.Flat),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
