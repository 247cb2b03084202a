package pets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeroenvanhattem/vethub/internal/domain/owners"
	"github.com/jeroenvanhattem/vethub/internal/platform/apierr"
	"github.com/jeroenvanhattem/vethub/internal/ports/tx"
)

type Service struct {
	repo   Repository
	owners OwnerFinder
	types  TypeFinder
	tx     tx.Manager
	now    func() time.Time
}

func NewService(repo Repository, ownerFinder OwnerFinder, typeFinder TypeFinder, txm tx.Manager) *Service {
	return &Service{
		repo:   repo,
		owners: ownerFinder,
		types:  typeFinder,
		tx:     txm,
		now:    time.Now,
	}
}

type Input struct {
	Name      string
	BirthDate time.Time
	TypeID    int64
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	const op = "pets.Service.List"

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// ListByOwner falla con OwnerNotFound si el owner no existe.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error) {
	const op = "pets.Service.ListByOwner"

	if _, err := s.owners.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	const op = "pets.Service.GetByID"

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, apierr.NotFound(apierr.PetNotFound)
		}
		return Pet{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Get resuelve la mascota de una ruta. En rutas anidadas primero tiene que existir
// el owner, y una mascota de otro owner se reporta igual que una inexistente.
func (s *Service) Get(ctx context.Context, ref Ref) (Pet, error) {
	if ref.OwnerID != 0 {
		if _, err := s.owners.GetByID(ctx, ref.OwnerID); err != nil {
			return Pet{}, err
		}
	}

	p, err := s.GetByID(ctx, ref.PetID)
	if err != nil {
		return Pet{}, err
	}
	if ref.OwnerID != 0 && p.OwnerID != ref.OwnerID {
		return Pet{}, apierr.NotFound(apierr.PetNotFound)
	}
	return p, nil
}

// Create resuelve owner y después tipo; el primero que falte define el 404.
func (s *Service) Create(ctx context.Context, ownerID int64, in Input) (Pet, error) {
	const op = "pets.Service.Create"

	if err := s.validate(in); err != nil {
		return Pet{}, err
	}

	var out Pet
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		o, err := s.owners.GetByID(ctx, ownerID)
		if err != nil {
			return err
		}
		pt, err := s.types.GetByID(ctx, in.TypeID)
		if err != nil {
			return err
		}

		p, err := s.repo.Create(ctx, Pet{
			Name:      in.Name,
			BirthDate: in.BirthDate,
			OwnerID:   o.ID,
			Type:      pt,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		out = p
		return nil
	})
	return out, err
}

// Update reemplaza nombre, fecha y tipo. El owner no cambia.
func (s *Service) Update(ctx context.Context, ref Ref, in Input) (Pet, error) {
	const op = "pets.Service.Update"

	if err := s.validate(in); err != nil {
		return Pet{}, err
	}

	var out Pet
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.Get(ctx, ref)
		if err != nil {
			return err
		}
		pt, err := s.types.GetByID(ctx, in.TypeID)
		if err != nil {
			return err
		}

		p.Name = in.Name
		p.BirthDate = in.BirthDate
		p.Type = pt

		if err := s.repo.Update(ctx, p); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.PetNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		out = p
		return nil
	})
	return out, err
}

func (s *Service) Delete(ctx context.Context, ref Ref) error {
	const op = "pets.Service.Delete"

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.Get(ctx, ref); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, ref.PetID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.PetNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
}

// SummariesByOwner implementa owners.PetLister.
func (s *Service) SummariesByOwner(ctx context.Context, ownerID int64) ([]owners.PetSummary, error) {
	const op = "pets.Service.SummariesByOwner"

	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]owners.PetSummary, 0, len(items))
	for _, p := range items {
		out = append(out, owners.PetSummary{
			ID:        p.ID,
			Name:      p.Name,
			BirthDate: p.BirthDate,
			TypeName:  p.Type.Name,
		})
	}
	return out, nil
}

func (s *Service) validate(in Input) error {
	today := s.now().UTC().Truncate(24 * time.Hour)
	if !in.BirthDate.IsZero() && !in.BirthDate.Before(today) {
		return apierr.Invalid(apierr.NewViolation("birthDate", apierr.RuleNotInPast))
	}
	return nil
}
