package owners

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("owner not found")

type Repository interface {
	List(ctx context.Context) ([]Owner, error)
	// ListByLastName compara por igualdad exacta (case-sensitive).
	ListByLastName(ctx context.Context, lastName string) ([]Owner, error)
	GetByID(ctx context.Context, id int64) (Owner, error)
	Create(ctx context.Context, o Owner) (Owner, error)
	Update(ctx context.Context, o Owner) error
	// Delete borra en cascada mascotas, visitas, vacunas y turnos del owner.
	Delete(ctx context.Context, id int64) error
}

// PetLister lo implementa pets.Service.
type PetLister interface {
	SummariesByOwner(ctx context.Context, ownerID int64) ([]PetSummary, error)
}
