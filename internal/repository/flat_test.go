package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/flats-api/internal/model"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.values[i].(int64)
		case *string:
			*p = r.values[i].(string)
		case *time.Time:
			*p = r.values[i].(time.Time)
		}
	}
	return nil
}

type fakeDB struct {
	row      fakeRow
	tag      pgconn.CommandTag
	execErr  error
	lastSQL  string
	lastArgs []any
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.lastSQL, db.lastArgs = sql, args
	return db.tag, db.execErr
}

func (db *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not supported by fakeDB")
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.lastSQL, db.lastArgs = sql, args
	return db.row
}

func TestFlatRepoFindByID(t *testing.T) {
	occupancy := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	db := &fakeDB{row: fakeRow{values: []any{int64(3), occupancy, "Main St", "12345", "Metropolis", "US", "a@b.com"}}}

	flat, err := NewFlatRepository(db).FindByID(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, int64(3), flat.ID)
	assert.Equal(t, "2024-01-01", flat.OccupancyDate.String())
	assert.Equal(t, "Metropolis", flat.City)
	assert.Equal(t, []any{int64(3)}, db.lastArgs)
}

func TestFlatRepoFindByIDNotFound(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}

	_, err := NewFlatRepository(db).FindByID(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrFlatNotFound)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestFlatRepoFindByIDDriverError(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: errors.New("connection reset")}}

	_, err := NewFlatRepository(db).FindByID(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFlatNotFound)
	assert.Contains(t, err.Error(), "finding flat 1")
}

func TestFlatRepoSaveInsertsNewFlat(t *testing.T) {
	db := &fakeDB{row: fakeRow{values: []any{int64(42)}}}
	flat := &model.Flat{Street: "Main St"}

	require.NoError(t, NewFlatRepository(db).Save(context.Background(), flat))
	assert.Equal(t, int64(42), flat.ID)
	assert.Contains(t, db.lastSQL, "INSERT INTO flats")
}

func TestFlatRepoSaveUpdatesExistingFlat(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("UPDATE 1")}
	flat := &model.Flat{ID: 5, Street: "Elm St"}

	require.NoError(t, NewFlatRepository(db).Save(context.Background(), flat))
	assert.Contains(t, db.lastSQL, "UPDATE flats")
	assert.Equal(t, int64(5), db.lastArgs[0])
}

func TestFlatRepoSaveUpdateMissing(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("UPDATE 0")}

	err := NewFlatRepository(db).Save(context.Background(), &model.Flat{ID: 5})
	assert.ErrorIs(t, err, ErrFlatNotFound)
}

func TestFlatRepoRemove(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("DELETE 1")}
	require.NoError(t, NewFlatRepository(db).Remove(context.Background(), &model.Flat{ID: 9}))
	assert.Contains(t, db.lastSQL, "DELETE FROM flats")

	db.tag = pgconn.NewCommandTag("DELETE 0")
	assert.ErrorIs(t, NewFlatRepository(db).Remove(context.Background(), &model.Flat{ID: 9}), ErrFlatNotFound)
}
