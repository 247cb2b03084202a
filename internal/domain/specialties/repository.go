package specialties

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("specialty not found")

type Repository interface {
	List(ctx context.Context) ([]Specialty, error)
	GetByID(ctx context.Context, id int64) (Specialty, error)
	// ListByIDs ignora ids inexistentes.
	ListByIDs(ctx context.Context, ids []int64) ([]Specialty, error)
	Create(ctx context.Context, sp Specialty) (Specialty, error)
	Update(ctx context.Context, sp Specialty) error
	// Delete también desvincula la especialidad de los vets.
	Delete(ctx context.Context, id int64) error
}
