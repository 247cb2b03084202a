package memory

import (
	"context"

	"github.com/jeroenvanhattem/vethub/internal/domain/vets"
)

type vetRepo struct {
	db *DB
}

func NewVetRepo(db *DB) vets.Repository {
	return &vetRepo{db: db}
}

func (r *vetRepo) List(ctx context.Context) ([]vets.Vet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	items := sortedByID(r.db.data.vets, nil)
	for i := range items {
		items[i].Specialties = r.db.specialtiesOf(items[i].ID)
	}
	return items, nil
}

func (r *vetRepo) GetByID(ctx context.Context, id int64) (vets.Vet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	v, ok := r.db.data.vets[id]
	if !ok {
		return vets.Vet{}, vets.ErrNotFound
	}
	v.Specialties = r.db.specialtiesOf(id)
	return v, nil
}

func (r *vetRepo) Create(ctx context.Context, v vets.Vet) (vets.Vet, error) {
	defer r.db.lock(ctx)()

	v.ID = r.db.nextID("vets")
	r.db.data.vets[v.ID] = vets.Vet{ID: v.ID, FirstName: v.FirstName, LastName: v.LastName}
	r.db.setSpecialties(v.ID, v.Specialties)
	v.Specialties = r.db.specialtiesOf(v.ID)
	return v, nil
}

func (r *vetRepo) Update(ctx context.Context, v vets.Vet) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.vets[v.ID]; !exists {
		return vets.ErrNotFound
	}
	r.db.data.vets[v.ID] = vets.Vet{ID: v.ID, FirstName: v.FirstName, LastName: v.LastName}
	r.db.setSpecialties(v.ID, v.Specialties)
	return nil
}

func (r *vetRepo) Delete(ctx context.Context, id int64) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.vets[id]; !exists {
		return vets.ErrNotFound
	}
	r.db.deleteVetCascade(id)
	return nil
}
