package service

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/flats-api/internal/errs"
	"github.com/deppfellow/flats-api/internal/model"
	"github.com/deppfellow/flats-api/internal/repository"
	"github.com/deppfellow/flats-api/internal/sqlerr"
)

// Binder validates a JSON payload and writes it onto a flat. It must
// leave the flat untouched when it fails.
type Binder interface {
	Bind(data []byte, target *model.Flat) error
}

// Notifier tells a flat's contact about its creation and reports how
// many messages went out.
type Notifier interface {
	SendNewFlatEmail(ctx context.Context, flat *model.Flat) (int, error)
}

const codeNoFlats = "FLATS_NOT_FOUND"

type FlatService struct {
	logger   *zerolog.Logger
	repo     repository.FlatRepository
	binder   Binder
	notifier Notifier
}

func NewFlatService(logger *zerolog.Logger, repo repository.FlatRepository, binder Binder, notifier Notifier) *FlatService {
	return &FlatService{
		logger:   logger,
		repo:     repo,
		binder:   binder,
		notifier: notifier,
	}
}

// CreateFlat binds payload onto a new flat, stores it and notifies its
// contact. A failed notification is logged and does not fail the call.
func (s *FlatService) CreateFlat(ctx context.Context, payload []byte) (*model.Flat, error) {
	flat := &model.Flat{}
	if err := s.binder.Bind(payload, flat); err != nil {
		return nil, s.fail(ctx, "create_flat", err)
	}

	if err := s.repo.Save(ctx, flat); err != nil {
		return nil, s.fail(ctx, "create_flat", err)
	}

	s.notify(ctx, flat)

	return flat, nil
}

func (s *FlatService) GetFlat(ctx context.Context, id int64) (*model.Flat, error) {
	flat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get_flat", err)
	}
	return flat, nil
}

// ListFlats returns every flat ordered by id. An empty store is a 404,
// not an empty list.
func (s *FlatService) ListFlats(ctx context.Context) ([]model.Flat, error) {
	flats, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list_flats", err)
	}

	if len(flats) == 0 {
		return nil, errs.NewNotFoundError("No flats found", true, errs.WithCode(codeNoFlats))
	}
	return flats, nil
}

// UpdateFlat binds payload onto the stored flat, keeping its id. Fields
// missing from payload keep their current values.
func (s *FlatService) UpdateFlat(ctx context.Context, id int64, payload []byte) error {
	flat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return s.fail(ctx, "update_flat", err)
	}

	if err := s.binder.Bind(payload, flat); err != nil {
		return s.fail(ctx, "update_flat", err)
	}

	if err := s.repo.Save(ctx, flat); err != nil {
		return s.fail(ctx, "update_flat", err)
	}
	return nil
}

func (s *FlatService) DeleteFlat(ctx context.Context, id int64) error {
	flat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return s.fail(ctx, "delete_flat", err)
	}

	if err := s.repo.Remove(ctx, flat); err != nil {
		return s.fail(ctx, "delete_flat", err)
	}
	return nil
}

func (s *FlatService) notify(ctx context.Context, flat *model.Flat) {
	sent, err := s.notifier.SendNewFlatEmail(ctx, flat)
	if err == nil && sent > 0 {
		return
	}

	event := s.log(ctx).Error().Int64("flat_id", flat.ID)
	if err != nil {
		event = event.Err(err)
	}
	event.Msgf("email for flat with id %d was not sent", flat.ID)
}

// fail turns err into the error returned to the handler. Client errors
// (4xx) pass through; anything else is logged and replaced by a generic
// 500.
func (s *FlatService) fail(ctx context.Context, operation string, err error) error {
	var httpErr *errs.HTTPError
	if errors.As(sqlerr.HandleError(err), &httpErr) && httpErr.Status < http.StatusInternalServerError {
		return httpErr
	}

	s.log(ctx).Error().
		Str("operation", operation).
		Dict("error", zerolog.Dict().
			Str("code", sqlerr.DatabaseCode(err)).
			Str("kind", string(sqlerr.ErrCode(err))).
			Str("message", err.Error())).
		Msg("unexpected error while handling flat")

	return errs.NewInternalServerError()
}

// log prefers the request-scoped logger carried by ctx.
func (s *FlatService) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}
