package visits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeroenvanhattem/vethub/internal/domain/pets"
	"github.com/jeroenvanhattem/vethub/internal/platform/apierr"
	"github.com/jeroenvanhattem/vethub/internal/ports/tx"
)

type Service struct {
	repo Repository
	pets PetResolver
	tx   tx.Manager
}

func NewService(repo Repository, petResolver PetResolver, txm tx.Manager) *Service {
	return &Service{repo: repo, pets: petResolver, tx: txm}
}

type Input struct {
	Date        time.Time
	Description string
}

func (s *Service) List(ctx context.Context) ([]Visit, error) {
	const op = "visits.Service.List"

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// ListByPet falla si la cadena owner → pet no resuelve.
func (s *Service) ListByPet(ctx context.Context, ref pets.Ref) ([]Visit, error) {
	const op = "visits.Service.ListByPet"

	p, err := s.pets.Get(ctx, ref)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListByPet(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Get con ref vacío busca solo por id; con ref además exige que la
// visita sea de esa mascota.
func (s *Service) Get(ctx context.Context, ref pets.Ref, id int64) (Visit, error) {
	const op = "visits.Service.Get"

	if ref.PetID != 0 {
		if _, err := s.pets.Get(ctx, ref); err != nil {
			return Visit{}, err
		}
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Visit{}, apierr.NotFound(apierr.VisitNotFound)
		}
		return Visit{}, fmt.Errorf("%s: %w", op, err)
	}
	if ref.PetID != 0 && v.PetID != ref.PetID {
		return Visit{}, apierr.NotFound(apierr.VisitNotFound)
	}
	return v, nil
}

func (s *Service) Create(ctx context.Context, ref pets.Ref, in Input) (Visit, error) {
	const op = "visits.Service.Create"

	var out Visit
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.pets.Get(ctx, ref)
		if err != nil {
			return err
		}

		v, err := s.repo.Create(ctx, Visit{
			Date:        in.Date,
			Description: in.Description,
			PetID:       p.ID,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		out = v
		return nil
	})
	return out, err
}

// Update reemplaza fecha y descripción; la mascota no cambia.
func (s *Service) Update(ctx context.Context, ref pets.Ref, id int64, in Input) (Visit, error) {
	const op = "visits.Service.Update"

	var out Visit
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v, err := s.Get(ctx, ref, id)
		if err != nil {
			return err
		}

		v.Date = in.Date
		v.Description = in.Description

		if err := s.repo.Update(ctx, v); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.VisitNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		out = v
		return nil
	})
	return out, err
}

func (s *Service) Delete(ctx context.Context, ref pets.Ref, id int64) error {
	const op = "visits.Service.Delete"

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.Get(ctx, ref, id); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.VisitNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
}

// SummariesByPet implementa pets.VisitLister.
func (s *Service) SummariesByPet(ctx context.Context, petID int64) ([]pets.VisitSummary, error) {
	const op = "visits.Service.SummariesByPet"

	items, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]pets.VisitSummary, 0, len(items))
	for _, v := range items {
		out = append(out, pets.VisitSummary{ID: v.ID, Date: v.Date, Description: v.Description})
	}
	return out, nil
}
