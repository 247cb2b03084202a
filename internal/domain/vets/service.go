package vets

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeroenvanhattem/vethub/internal/platform/apierr"
	"github.com/jeroenvanhattem/vethub/internal/ports/tx"
)

type Service struct {
	repo        Repository
	specialties SpecialtyResolver
	tx          tx.Manager
}

func NewService(repo Repository, resolver SpecialtyResolver, txm tx.Manager) *Service {
	return &Service{repo: repo, specialties: resolver, tx: txm}
}

// Input: los SpecialtyIDs inexistentes se ignoran sin error.
type Input struct {
	FirstName    string
	LastName     string
	SpecialtyIDs []int64
}

func (s *Service) List(ctx context.Context) ([]Vet, error) {
	const op = "vets.Service.List"

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Vet, error) {
	const op = "vets.Service.GetByID"

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Vet{}, apierr.NotFound(apierr.VetNotFound)
		}
		return Vet{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Vet, error) {
	const op = "vets.Service.Create"

	var out Vet
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sps, err := s.specialties.Resolve(ctx, in.SpecialtyIDs)
		if err != nil {
			return err
		}

		v, err := s.repo.Create(ctx, Vet{
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			Specialties: sps,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		out = v
		return nil
	})
	return out, err
}

// Update reemplaza nombre y el set completo de especialidades.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Vet, error) {
	const op = "vets.Service.Update"

	var out Vet
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		sps, err := s.specialties.Resolve(ctx, in.SpecialtyIDs)
		if err != nil {
			return err
		}

		v.FirstName = in.FirstName
		v.LastName = in.LastName
		v.Specialties = sps

		if err := s.repo.Update(ctx, v); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.VetNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		out = v
		return nil
	})
	return out, err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "vets.Service.Delete"

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.VetNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
}
