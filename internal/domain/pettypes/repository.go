package pettypes

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("pet type not found")

type Repository interface {
	List(ctx context.Context) ([]PetType, error)
	GetByID(ctx context.Context, id int64) (PetType, error)
	Create(ctx context.Context, pt PetType) (PetType, error)
	Update(ctx context.Context, pt PetType) error
	Delete(ctx context.Context, id int64) error
}
