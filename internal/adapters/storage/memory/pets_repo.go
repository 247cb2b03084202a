package memory

import (
	"context"

	"github.com/jeroenvanhattem/vethub/internal/domain/pets"
)

type petRepo struct {
	db *DB
}

func NewPetRepo(db *DB) pets.Repository {
	return &petRepo{db: db}
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.withType(sortedByID(r.db.data.pets, nil)), nil
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.withType(sortedByID(r.db.data.pets, func(p pets.Pet) bool {
		return p.OwnerID == ownerID
	})), nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.data.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	p.Type = r.db.data.petTypes[p.Type.ID]
	return p, nil
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	defer r.db.lock(ctx)()

	p.ID = r.db.nextID("pets")
	r.db.data.pets[p.ID] = p
	p.Type = r.db.data.petTypes[p.Type.ID]
	return p, nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.pets[p.ID]; !exists {
		return pets.ErrNotFound
	}
	r.db.data.pets[p.ID] = p
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.pets[id]; !exists {
		return pets.ErrNotFound
	}
	r.db.deletePetCascade(id)
	return nil
}

// withType completa el nombre del tipo; requiere mu tomado.
func (r *petRepo) withType(items []pets.Pet) []pets.Pet {
	for i := range items {
		items[i].Type = r.db.data.petTypes[items[i].Type.ID]
	}
	return items
}
