package memory

import (
	"context"

	"github.com/jeroenvanhattem/vethub/internal/domain/specialties"
)

type specialtyRepo struct {
	db *DB
}

func NewSpecialtyRepo(db *DB) specialties.Repository {
	return &specialtyRepo{db: db}
}

func (r *specialtyRepo) List(ctx context.Context) ([]specialties.Specialty, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return sortedByID(r.db.data.specialties, nil), nil
}

func (r *specialtyRepo) GetByID(ctx context.Context, id int64) (specialties.Specialty, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	sp, ok := r.db.data.specialties[id]
	if !ok {
		return specialties.Specialty{}, specialties.ErrNotFound
	}
	return sp, nil
}

func (r *specialtyRepo) ListByIDs(ctx context.Context, ids []int64) ([]specialties.Specialty, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	return sortedByID(r.db.data.specialties, func(sp specialties.Specialty) bool {
		_, ok := want[sp.ID]
		return ok
	}), nil
}

func (r *specialtyRepo) Create(ctx context.Context, sp specialties.Specialty) (specialties.Specialty, error) {
	defer r.db.lock(ctx)()

	sp.ID = r.db.nextID("specialties")
	r.db.data.specialties[sp.ID] = sp
	return sp, nil
}

func (r *specialtyRepo) Update(ctx context.Context, sp specialties.Specialty) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.specialties[sp.ID]; !exists {
		return specialties.ErrNotFound
	}
	r.db.data.specialties[sp.ID] = sp
	return nil
}

func (r *specialtyRepo) Delete(ctx context.Context, id int64) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.specialties[id]; !exists {
		return specialties.ErrNotFound
	}
	delete(r.db.data.specialties, id)
	r.db.unlinkSpecialty(id)
	return nil
}
