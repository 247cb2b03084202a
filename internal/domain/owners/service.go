package owners

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

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	const op = "owners.Service.List"

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// FindByLastName con lastName nil equivale a List.
func (s *Service) FindByLastName(ctx context.Context, lastName *string) ([]Owner, error) {
	const op = "owners.Service.FindByLastName"

	if lastName == nil {
		return s.List(ctx)
	}

	items, err := s.repo.ListByLastName(ctx, *lastName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Owner, error) {
	const op = "owners.Service.GetByID"

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Owner{}, apierr.NotFound(apierr.OwnerNotFound)
		}
		return Owner{}, fmt.Errorf("%s: %w", op, err)
	}
	return o, nil
}

func (s *Service) Create(ctx context.Context, in *CreateInput) (Owner, error) {
	const op = "owners.Service.Create"

	if err := ValidateCreate(in); err != nil {
		return Owner{}, err
	}

	var out Owner
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		o, err := s.repo.Create(ctx, Owner{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Address:   in.Address,
			City:      in.City,
			Telephone: in.Telephone,
			Email:     in.Email,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		out = o
		return nil
	})
	return out, err
}

// Update reemplaza todos los campos (no es un merge).
func (s *Service) Update(ctx context.Context, id int64, in *UpdateInput) (Owner, error) {
	const op = "owners.Service.Update"

	if err := ValidateUpdate(in); err != nil {
		return Owner{}, err
	}

	var out Owner
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		o, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}

		o.FirstName = in.FirstName
		o.LastName = in.LastName
		o.Address = in.Address
		o.City = in.City
		o.Telephone = in.Telephone
		o.Email = in.Email

		if err := s.repo.Update(ctx, o); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.OwnerNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		out = o
		return nil
	})
	return out, err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "owners.Service.Delete"

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return apierr.NotFound(apierr.OwnerNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
}
