package memory

import (
	"context"

	"github.com/jeroenvanhattem/vethub/internal/domain/owners"
)

type ownerRepo struct {
	db *DB
}

func NewOwnerRepo(db *DB) owners.Repository {
	return &ownerRepo{db: db}
}

func (r *ownerRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return sortedByID(r.db.data.owners, nil), nil
}

func (r *ownerRepo) ListByLastName(ctx context.Context, lastName string) ([]owners.Owner, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return sortedByID(r.db.data.owners, func(o owners.Owner) bool {
		return o.LastName == lastName
	}), nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	o, ok := r.db.data.owners[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *ownerRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	defer r.db.lock(ctx)()

	o.ID = r.db.nextID("owners")
	r.db.data.owners[o.ID] = o
	return o, nil
}

func (r *ownerRepo) Update(ctx context.Context, o owners.Owner) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.owners[o.ID]; !exists {
		return owners.ErrNotFound
	}
	r.db.data.owners[o.ID] = o
	return nil
}

func (r *ownerRepo) Delete(ctx context.Context, id int64) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.owners[id]; !exists {
		return owners.ErrNotFound
	}
	r.db.deleteOwnerCascade(id)
	return nil
}
