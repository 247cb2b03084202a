package memory

import (
	"context"

	"github.com/jeroenvanhattem/vethub/internal/domain/vaccinations"
)

type vaccinationRepo struct {
	db *DB
}

func NewVaccinationRepo(db *DB) vaccinations.Repository {
	return &vaccinationRepo{db: db}
}

func (r *vaccinationRepo) List(ctx context.Context) ([]vaccinations.Vaccination, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.withPetName(sortedByID(r.db.data.vaccinations, nil)), nil
}

func (r *vaccinationRepo) ListByPet(ctx context.Context, petID int64) ([]vaccinations.Vaccination, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.withPetName(sortedByID(r.db.data.vaccinations, func(v vaccinations.Vaccination) bool {
		return v.PetID == petID
	})), nil
}

func (r *vaccinationRepo) GetByID(ctx context.Context, id int64) (vaccinations.Vaccination, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	v, ok := r.db.data.vaccinations[id]
	if !ok {
		return vaccinations.Vaccination{}, vaccinations.ErrNotFound
	}
	v.PetName = r.db.data.pets[v.PetID].Name
	return v, nil
}

func (r *vaccinationRepo) Create(ctx context.Context, v vaccinations.Vaccination) (vaccinations.Vaccination, error) {
	defer r.db.lock(ctx)()

	v.ID = r.db.nextID("vaccinations")
	v.PetName = ""
	r.db.data.vaccinations[v.ID] = v
	v.PetName = r.db.data.pets[v.PetID].Name
	return v, nil
}

func (r *vaccinationRepo) Update(ctx context.Context, v vaccinations.Vaccination) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.vaccinations[v.ID]; !exists {
		return vaccinations.ErrNotFound
	}
	v.PetName = ""
	r.db.data.vaccinations[v.ID] = v
	return nil
}

func (r *vaccinationRepo) Delete(ctx context.Context, id int64) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.vaccinations[id]; !exists {
		return vaccinations.ErrNotFound
	}
	delete(r.db.data.vaccinations, id)
	return nil
}

func (r *vaccinationRepo) withPetName(items []vaccinations.Vaccination) []vaccinations.Vaccination {
	for i := range items {
		items[i].PetName = r.db.data.pets[items[i].PetID].Name
	}
	return items
}
