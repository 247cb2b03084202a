package vaccinations

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
	now  func() time.Time
}

func NewService(repo Repository, petResolver PetResolver, txm tx.Manager) *Service {
	return &Service{
		repo: repo,
		pets: petResolver,
		tx:   txm,
		now:  time.Now,
	}
}

type Input struct {
	VaccineName     string
	VaccinationDate time.Time
	NextDueDate     *time.Time
}

func (s *Service) List(ctx context.Context) ([]Vaccination, error) {
	const op = "vaccinations.Service.List"

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s *Service) ListByPet(ctx context.Context, ref pets.Ref) ([]Vaccination, error) {
	const op = "vaccinations.Service.ListByPet"

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

// Get: ref.PetID 0 = búsqueda global por id.
func (s *Service) Get(ctx context.Context, ref pets.Ref, id int64) (Vaccination, error) {
	const op = "vaccinations.Service.Get"

	if ref.PetID != 0 {
		if _, err := s.pets.Get(ctx, ref); err != nil {
			return Vaccination{}, err
		}
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Vaccination{}, apierr.NotFound(apierr.VaccinationNotFound)
		}
		return Vaccination{}, fmt.Errorf("%s: %w", op, err)
	}
	if ref.PetID != 0 && v.PetID != ref.PetID {
		return Vaccination{}, apierr.NotFound(apierr.VaccinationNotFound)
	}
	return v, nil
}

func (s *Service) Create(ctx context.Context, ref pets.Ref, in Input) (Vaccination, error) {
	const op = "vaccinations.Service.Create"

	if err := s.validate(in); err != nil {
		return Vaccination{}, err
	}

	var out Vaccination
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.pets.Get(ctx, ref)
		if err != nil {
			return err
		}

		v, err := s.repo.Create(ctx, Vaccination{
			VaccineName:     in.VaccineName,
			VaccinationDate: in.VaccinationDate,
			NextDueDate:     in.NextDueDate,
			PetID:           p.ID,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		v.PetName = p.Name
		out = v
		return nil
	})
	return out, err
}

func (s *Service) Update(ctx context.Context, ref pets.Ref, id int64, in Input) (Vaccination, error) {
	const op = "vaccinations.Service.Update"

	if err := s.validate(in); err != nil {
		return Vaccination{}, err
	}

	var out Vaccination
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v, err := s.Get(ctx, ref, id)
		if err != nil {
			return err
		}

		v.VaccineName = in.VaccineName
		v.VaccinationDate = in.VaccinationDate
		v.NextDueDate = in.NextDueDate

		if err := s.repo.Update(ctx, v); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.VaccinationNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		out = v
		return nil
	})
	return out, err
}

func (s *Service) Delete(ctx context.Context, ref pets.Ref, id int64) error {
	const op = "vaccinations.Service.Delete"

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.Get(ctx, ref, id); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.VaccinationNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
}

func (s *Service) validate(in Input) error {
	today := s.now().UTC().Truncate(24 * time.Hour)
	if !in.VaccinationDate.IsZero() && !in.VaccinationDate.Before(today) {
		return apierr.Invalid(apierr.NewViolation("vaccinationDate", apierr.RuleNotInPast))
	}
	return nil
}
