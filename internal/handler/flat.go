package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/flats-api/internal/model"
	"github.com/deppfellow/flats-api/internal/server"
	"github.com/deppfellow/flats-api/internal/service"
)

// FlatHandler exposes the flats resource.
type FlatHandler struct {
	Handler
	flatService *service.FlatService
}

func NewFlatHandler(s *server.Server, flatService *service.FlatService) *FlatHandler {
	return &FlatHandler{
		Handler:     NewHandler(s),
		flatService: flatService,
	}
}

// CreateFlat stores a new flat and points the Location header at it.
func (h *FlatHandler) CreateFlat(c echo.Context, req *CreateFlatRequest) error {
	flat, err := h.flatService.CreateFlat(c.Request().Context(), []byte(req.Body))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/flats/%d", flat.ID))
	return nil
}

func (h *FlatHandler) GetFlat(c echo.Context, req *FlatIDRequest) (*model.Flat, error) {
	return h.flatService.GetFlat(c.Request().Context(), req.FlatID())
}

func (h *FlatHandler) ListFlats(c echo.Context, _ *ListFlatsRequest) ([]model.Flat, error) {
	return h.flatService.ListFlats(c.Request().Context())
}

func (h *FlatHandler) UpdateFlat(c echo.Context, req *UpdateFlatRequest) error {
	return h.flatService.UpdateFlat(c.Request().Context(), req.FlatID(), []byte(req.Body))
}

func (h *FlatHandler) DeleteFlat(c echo.Context, req *FlatIDRequest) error {
	return h.flatService.DeleteFlat(c.Request().Context(), req.FlatID())
}
