package service

import (
	"github.com/deppfellow/flats-api/internal/repository"
	"github.com/deppfellow/flats-api/internal/server"
	"github.com/deppfellow/flats-api/internal/validation"
)

type Services struct {
	Flat *FlatService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	flatService := NewFlatService(s.Logger, repos.Flats, validation.NewFlatBinder(), s.Email)

	return &Services{
		Flat: flatService,
	}, nil
}
