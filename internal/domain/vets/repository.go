package vets

import (
	"context"
	"errors"

	"github.com/jeroenvanhattem/vethub/internal/domain/specialties"
)

var ErrNotFound = errors.New("vet not found")

// Repository persiste el vet junto con sus vínculos a especialidades
// (se toman los ids de Vet.Specialties).
type Repository interface {
	List(ctx context.Context) ([]Vet, error)
	GetByID(ctx context.Context, id int64) (Vet, error)
	Create(ctx context.Context, v Vet) (Vet, error)
	Update(ctx context.Context, v Vet) error
	// Delete borra también los turnos del vet.
	Delete(ctx context.Context, id int64) error
}

type SpecialtyResolver interface {
	Resolve(ctx context.Context, ids []int64) ([]specialties.Specialty, error)
}
