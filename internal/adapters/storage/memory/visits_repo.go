package memory

import (
	"context"

	"github.com/jeroenvanhattem/vethub/internal/domain/visits"
)

type visitRepo struct {
	db *DB
}

func NewVisitRepo(db *DB) visits.Repository {
	return &visitRepo{db: db}
}

func (r *visitRepo) List(ctx context.Context) ([]visits.Visit, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return sortedByID(r.db.data.visits, nil), nil
}

func (r *visitRepo) ListByPet(ctx context.Context, petID int64) ([]visits.Visit, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return sortedByID(r.db.data.visits, func(v visits.Visit) bool {
		return v.PetID == petID
	}), nil
}

func (r *visitRepo) GetByID(ctx context.Context, id int64) (visits.Visit, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	v, ok := r.db.data.visits[id]
	if !ok {
		return visits.Visit{}, visits.ErrNotFound
	}
	return v, nil
}

func (r *visitRepo) Create(ctx context.Context, v visits.Visit) (visits.Visit, error) {
	defer r.db.lock(ctx)()

	v.ID = r.db.nextID("visits")
	r.db.data.visits[v.ID] = v
	return v, nil
}

func (r *visitRepo) Update(ctx context.Context, v visits.Visit) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.visits[v.ID]; !exists {
		return visits.ErrNotFound
	}
	r.db.data.visits[v.ID] = v
	return nil
}

func (r *visitRepo) Delete(ctx context.Context, id int64) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.visits[id]; !exists {
		return visits.ErrNotFound
	}
	delete(r.db.data.visits, id)
	return nil
}
