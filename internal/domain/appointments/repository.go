package appointments

import (
	"context"
	"errors"

	"github.com/jeroenvanhattem/vethub/internal/domain/pets"
	"github.com/jeroenvanhattem/vethub/internal/domain/vets"
)

var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	List(ctx context.Context) ([]Appointment, error)
	ListByPet(ctx context.Context, petID int64) ([]Appointment, error)
	ListByVet(ctx context.Context, vetID int64) ([]Appointment, error)
	GetByID(ctx context.Context, id int64) (Appointment, error)
	Create(ctx context.Context, a Appointment) (Appointment, error)
	Update(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id int64) error
}

type (
	PetFinder interface {
		GetByID(ctx context.Context, id int64) (pets.Pet, error)
	}

	VetFinder interface {
		GetByID(ctx context.Context, id int64) (vets.Vet, error)
	}
)
