package visits

import (
	"context"
	"errors"

	"github.com/jeroenvanhattem/vethub/internal/domain/pets"
)

var ErrNotFound = errors.New("visit not found")

type Repository interface {
	List(ctx context.Context) ([]Visit, error)
	ListByPet(ctx context.Context, petID int64) ([]Visit, error)
	GetByID(ctx context.Context, id int64) (Visit, error)
	Create(ctx context.Context, v Visit) (Visit, error)
	Update(ctx context.Context, v Visit) error
	Delete(ctx context.Context, id int64) error
}

// PetResolver lo implementa pets.Service.
type PetResolver interface {
	Get(ctx context.Context, ref pets.Ref) (pets.Pet, error)
}
