package vaccinations

import (
	"context"
	"errors"

	"github.com/jeroenvanhattem/vethub/internal/domain/pets"
)

var ErrNotFound = errors.New("vaccination not found")

type Repository interface {
	List(ctx context.Context) ([]Vaccination, error)
	ListByPet(ctx context.Context, petID int64) ([]Vaccination, error)
	GetByID(ctx context.Context, id int64) (Vaccination, error)
	Create(ctx context.Context, v Vaccination) (Vaccination, error)
	Update(ctx context.Context, v Vaccination) error
	Delete(ctx context.Context, id int64) error
}

type PetResolver interface {
	Get(ctx context.Context, ref pets.Ref) (pets.Pet, error)
}
