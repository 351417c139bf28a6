package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/deppfellow/flats-api/internal/model"
)

// DB is the subset of *pgxpool.Pool the repositories use.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const selectFlat = `
	SELECT id, occupancy_date, street, zip, city, country, email
	FROM flats`

type flatRepo struct {
	db DB
}

// NewFlatRepository returns a FlatRepository backed by Postgres.
func NewFlatRepository(db DB) FlatRepository {
	return &flatRepo{db: db}
}

func (r *flatRepo) FindByID(ctx context.Context, id int64) (*model.Flat, error) {
	row := r.db.QueryRow(ctx, selectFlat+" WHERE id = $1", id)

	flat, err := scanFlat(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFlatNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "finding flat %d", id)
	}
	return flat, nil
}

func (r *flatRepo) FindAll(ctx context.Context) ([]model.Flat, error) {
	rows, err := r.db.Query(ctx, selectFlat+" ORDER BY id")
	if err != nil {
		return nil, errors.Wrap(err, "listing flats")
	}
	defer rows.Close()

	var out []model.Flat
	for rows.Next() {
		flat, err := scanFlat(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning flat")
		}
		out = append(out, *flat)
	}
	return out, errors.Wrap(rows.Err(), "listing flats")
}

func (r *flatRepo) Save(ctx context.Context, flat *model.Flat) error {
	if flat.IsNew() {
		return r.insert(ctx, flat)
	}
	return r.update(ctx, flat)
}

func (r *flatRepo) insert(ctx context.Context, flat *model.Flat) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO flats (occupancy_date, street, zip, city, country, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id
	`, flat.OccupancyDate.Time, flat.Street, flat.Zip, flat.City, flat.Country, flat.Email)

	var id int64
	if err := row.Scan(&id); err != nil {
		return errors.Wrap(err, "inserting flat")
	}
	flat.ID = id
	return nil
}

func (r *flatRepo) update(ctx context.Context, flat *model.Flat) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE flats
		SET occupancy_date = $2, street = $3, zip = $4, city = $5, country = $6, email = $7, updated_at = NOW()
		WHERE id = $1
	`, flat.ID, flat.OccupancyDate.Time, flat.Street, flat.Zip, flat.City, flat.Country, flat.Email)
	if err != nil {
		return errors.Wrapf(err, "updating flat %d", flat.ID)
	}
	if tag.RowsAffected() == 0 {
		return ErrFlatNotFound
	}
	return nil
}

func (r *flatRepo) Remove(ctx context.Context, flat *model.Flat) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM flats WHERE id = $1`, flat.ID)
	if err != nil {
		return errors.Wrapf(err, "deleting flat %d", flat.ID)
	}
	if tag.RowsAffected() == 0 {
		return ErrFlatNotFound
	}
	return nil
}

func scanFlat(row pgx.Row) (*model.Flat, error) {
	var flat model.Flat
	err := row.Scan(
		&flat.ID,
		&flat.OccupancyDate.Time,
		&flat.Street,
		&flat.Zip,
		&flat.City,
		&flat.Country,
		&flat.Email,
	)
	if err != nil {
		return nil, err
	}
	flat.OccupancyDate = model.NewDate(flat.OccupancyDate.Time)
	return &flat, nil
}
