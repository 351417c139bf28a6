// Package repository is the persistence gateway.
//
// It hides SQL behind small interfaces so the service layer only speaks
// in domain entities: find one, find all, save, remove.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/flats-api/internal/model"
	"github.com/deppfellow/flats-api/internal/sqlerr"
)

// ErrFlatNotFound is returned when no flat exists for the requested id.
//
// It wraps pgx.ErrNoRows tagged with the flats table, so sqlerr.HandleError
// renders it as a 404 "Flat not found".
var ErrFlatNotFound = sqlerr.WithTable("flats", pgx.ErrNoRows)

// FlatRepository stores flats.
//
// Save inserts a flat whose ID is zero, assigning the new id to it, and
// updates it otherwise. Save on a vanished flat and Remove on an unknown
// one fail with ErrFlatNotFound.
type FlatRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Flat, error)
	FindAll(ctx context.Context) ([]model.Flat, error)
	Save(ctx context.Context, flat *model.Flat) error
	Remove(ctx context.Context, flat *model.Flat) error
}
