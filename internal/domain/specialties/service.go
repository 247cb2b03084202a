package specialties

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

func (s *Service) List(ctx context.Context) ([]Specialty, error) {
	const op = "specialties.Service.List"

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Specialty, error) {
	const op = "specialties.Service.GetByID"

	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Specialty{}, apierr.NotFound(apierr.SpecialtyNotFound)
		}
		return Specialty{}, fmt.Errorf("%s: %w", op, err)
	}
	return sp, nil
}

// Resolve devuelve las especialidades existentes entre ids, sin duplicados.
func (s *Service) Resolve(ctx context.Context, ids []int64) ([]Specialty, error) {
	const op = "specialties.Service.Resolve"

	if len(ids) == 0 {
		return []Specialty{}, nil
	}

	seen := make(map[int64]struct{}, len(ids))
	uniq := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}

	items, err := s.repo.ListByIDs(ctx, uniq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Specialty, error) {
	const op = "specialties.Service.Create"

	var out Specialty
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sp, err := s.repo.Create(ctx, Specialty{Name: in.Name})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		out = sp
		return nil
	})
	return out, err
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Specialty, error) {
	const op = "specialties.Service.Update"

	var out Specialty
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sp, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		sp.Name = in.Name
		if err := s.repo.Update(ctx, sp); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.SpecialtyNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		out = sp
		return nil
	})
	return out, err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "specialties.Service.Delete"

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.SpecialtyNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
}
