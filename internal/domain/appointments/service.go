package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeroenvanhattem/vethub/internal/platform/apierr"
	"github.com/jeroenvanhattem/vethub/internal/ports/tx"
)

type Service struct {
	repo Repository
	pets PetFinder
	vets VetFinder
	tx   tx.Manager
	now  func() time.Time
}

func NewService(repo Repository, petFinder PetFinder, vetFinder VetFinder, txm tx.Manager) *Service {
	return &Service{
		repo: repo,
		pets: petFinder,
		vets: vetFinder,
		tx:   txm,
		now:  time.Now,
	}
}

// CreateInput: Status vacío = SCHEDULED.
type CreateInput struct {
	ScheduledAt time.Time
	Reason      string
	Status      Status
	PetID       int64
	VetID       int64
}

type UpdateInput struct {
	ScheduledAt time.Time
	Reason      string
	Status      Status
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	const op = "appointments.Service.List"

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s *Service) ListByPet(ctx context.Context, petID int64) ([]Appointment, error) {
	const op = "appointments.Service.ListByPet"

	if _, err := s.pets.GetByID(ctx, petID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s *Service) ListByVet(ctx context.Context, vetID int64) ([]Appointment, error) {
	const op = "appointments.Service.ListByVet"

	if _, err := s.vets.GetByID(ctx, vetID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByVet(ctx, vetID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Appointment, error) {
	const op = "appointments.Service.GetByID"

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Appointment{}, apierr.NotFound(apierr.AppointmentNotFound)
		}
		return Appointment{}, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

// Create valida primero la mascota y después el vet.
func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	const op = "appointments.Service.Create"

	if in.Status == "" {
		in.Status = StatusScheduled
	}
	if err := s.validate(in.ScheduledAt, in.Status, true); err != nil {
		return Appointment{}, err
	}

	var out Appointment
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.pets.GetByID(ctx, in.PetID)
		if err != nil {
			return err
		}
		v, err := s.vets.GetByID(ctx, in.VetID)
		if err != nil {
			return err
		}

		a, err := s.repo.Create(ctx, Appointment{
			ScheduledAt: in.ScheduledAt,
			Reason:      in.Reason,
			Status:      in.Status,
			PetID:       p.ID,
			VetID:       v.ID,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		a.PetName = p.Name
		a.VetFirstName = v.FirstName
		a.VetLastName = v.LastName
		out = a
		return nil
	})
	return out, err
}

// Update reemplaza fecha, motivo y estado. Mascota y vet no cambian.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Appointment, error) {
	if err := s.validate(in.ScheduledAt, in.Status, false); err != nil {
		return Appointment{}, err
	}

	return s.mutate(ctx, "appointments.Service.Update", id, func(a *Appointment) {
		a.ScheduledAt = in.ScheduledAt
		a.Reason = in.Reason
		a.Status = in.Status
	})
}

// Cancel pisa el estado sin mirar el anterior.
func (s *Service) Cancel(ctx context.Context, id int64) (Appointment, error) {
	return s.mutate(ctx, "appointments.Service.Cancel", id, func(a *Appointment) {
		a.Status = StatusCancelled
	})
}

func (s *Service) Complete(ctx context.Context, id int64) (Appointment, error) {
	return s.mutate(ctx, "appointments.Service.Complete", id, func(a *Appointment) {
		a.Status = StatusCompleted
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "appointments.Service.Delete"

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.AppointmentNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
}

func (s *Service) mutate(ctx context.Context, op string, id int64, apply func(a *Appointment)) (Appointment, error) {
	var out Appointment
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}

		apply(&a)

		if err := s.repo.Update(ctx, a); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.AppointmentNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		out = a
		return nil
	})
	return out, err
}

// La fecha futura solo se exige en el alta.
func (s *Service) validate(at time.Time, st Status, creating bool) error {
	var vs []apierr.Violation
	if creating && !at.IsZero() && !at.After(s.now()) {
		vs = append(vs, apierr.NewViolation("scheduledDateTime", apierr.RuleNotInFuture))
	}
	if !st.Valid() {
		vs = append(vs, apierr.NewViolation("status", apierr.RuleInvalidValue))
	}
	return apierr.Invalid(vs...)
}
