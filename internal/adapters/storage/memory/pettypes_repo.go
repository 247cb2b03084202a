package memory

import (
	"context"

	"github.com/jeroenvanhattem/vethub/internal/domain/pettypes"
)

type petTypeRepo struct {
	db *DB
}

func NewPetTypeRepo(db *DB) pettypes.Repository {
	return &petTypeRepo{db: db}
}

func (r *petTypeRepo) List(ctx context.Context) ([]pettypes.PetType, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return sortedByID(r.db.data.petTypes, nil), nil
}

func (r *petTypeRepo) GetByID(ctx context.Context, id int64) (pettypes.PetType, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	pt, ok := r.db.data.petTypes[id]
	if !ok {
		return pettypes.PetType{}, pettypes.ErrNotFound
	}
	return pt, nil
}

func (r *petTypeRepo) Create(ctx context.Context, pt pettypes.PetType) (pettypes.PetType, error) {
	defer r.db.lock(ctx)()

	pt.ID = r.db.nextID("pet_types")
	r.db.data.petTypes[pt.ID] = pt
	return pt, nil
}

func (r *petTypeRepo) Update(ctx context.Context, pt pettypes.PetType) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.petTypes[pt.ID]; !exists {
		return pettypes.ErrNotFound
	}
	r.db.data.petTypes[pt.ID] = pt
	return nil
}

func (r *petTypeRepo) Delete(ctx context.Context, id int64) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.petTypes[id]; !exists {
		return pettypes.ErrNotFound
	}
	for _, p := range r.db.data.pets {
		if p.Type.ID == id {
			return ErrPetTypeInUse
		}
	}
	delete(r.db.data.petTypes, id)
	return nil
}
