package pettypes

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeroenvanhattem/vethub/internal/platform/apierr"
	"github.com/jeroenvanhattem/vethub/internal/ports/tx"
)

type Service struct {
	repo Repository
	tx   tx.Manager
}

func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{repo: repo, tx: txm}
}

type Input struct {
	Name string
}

func (s *Service) List(ctx context.Context) ([]PetType, error) {
	const op = "pettypes.Service.List"

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (PetType, error) {
	const op = "pettypes.Service.GetByID"

	pt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return PetType{}, apierr.NotFound(apierr.PetTypeNotFound)
		}
		return PetType{}, fmt.Errorf("%s: %w", op, err)
	}
	return pt, nil
}

func (s *Service) Create(ctx context.Context, in Input) (PetType, error) {
	const op = "pettypes.Service.Create"

	var out PetType
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		pt, err := s.repo.Create(ctx, PetType{Name: in.Name})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		out = pt
		return nil
	})
	return out, err
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (PetType, error) {
	const op = "pettypes.Service.Update"

	var out PetType
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		pt, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		pt.Name = in.Name
		if err := s.repo.Update(ctx, pt); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.PetTypeNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		out = pt
		return nil
	})
	return out, err
}

// Delete falla con error interno si todavía hay mascotas de este tipo.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "pettypes.Service.Delete"

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.PetTypeNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
}
