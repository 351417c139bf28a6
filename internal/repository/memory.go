package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/deppfellow/flats-api/internal/model"
)

type memoryFlatRepo struct {
	mu     sync.Mutex
	lastID int64
	flats  map[int64]model.Flat
}

// NewMemoryFlatRepository returns a FlatRepository that keeps flats in
// process memory. Ids come from a counter that only grows, so a deleted
// id is never handed out again.
func NewMemoryFlatRepository() FlatRepository {
	return &memoryFlatRepo{flats: make(map[int64]model.Flat)}
}

func (r *memoryFlatRepo) FindByID(_ context.Context, id int64) (*model.Flat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	flat, ok := r.flats[id]
	if !ok {
		return nil, ErrFlatNotFound
	}
	return &flat, nil
}

func (r *memoryFlatRepo) FindAll(_ context.Context) ([]model.Flat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Flat, 0, len(r.flats))
	for _, flat := range r.flats {
		out = append(out, flat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryFlatRepo) Save(_ context.Context, flat *model.Flat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if flat.IsNew() {
		r.lastID++
		flat.ID = r.lastID
	} else if _, ok := r.flats[flat.ID]; !ok {
		return ErrFlatNotFound
	}

	r.flats[flat.ID] = *flat
	return nil
}

func (r *memoryFlatRepo) Remove(_ context.Context, flat *model.Flat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flats[flat.ID]; !ok {
		return ErrFlatNotFound
	}
	delete(r.flats, flat.ID)
	return nil
}
