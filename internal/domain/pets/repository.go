package pets

import (
	"context"
	"errors"

	"github.com/jeroenvanhattem/vethub/internal/domain/owners"
	"github.com/jeroenvanhattem/vethub/internal/domain/pettypes"
)

var ErrNotFound = errors.New("pet not found")

type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) error
	// Delete borra también visitas, vacunas y turnos de la mascota.
	Delete(ctx context.Context, id int64) error
}

// Dependencias hacia otros módulos, como interfaces chicas para evitar ciclos.
type (
	OwnerFinder interface {
		GetByID(ctx context.Context, id int64) (owners.Owner, error)
	}

	TypeFinder interface {
		GetByID(ctx context.Context, id int64) (pettypes.PetType, error)
	}

	// VisitLister lo implementa visits.Service.
	VisitLister interface {
		SummariesByPet(ctx context.Context, petID int64) ([]VisitSummary, error)
	}
)
