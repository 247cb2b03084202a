package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jeroenvanhattem/vethub/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

const ownerColumns = `id, first_name, last_name, address, city, telephone, email`

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	return r.query(ctx, `SELECT `+ownerColumns+` FROM owners ORDER BY id`)
}

func (r *OwnersRepo) ListByLastName(ctx context.Context, lastName string) ([]owners.Owner, error) {
	return r.query(ctx, `SELECT `+ownerColumns+` FROM owners WHERE last_name = $1 ORDER BY id`, lastName)
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+ownerColumns+` FROM owners WHERE id = $1`, id)

	o, err := scanOwner(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO owners (first_name, last_name, address, city, telephone, email)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		o.FirstName,
		o.LastName,
		o.Address,
		o.City,
		o.Telephone,
		o.Email,
	).Scan(&o.ID)
	return o, err
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE owners
		SET
			first_name = $2,
			last_name = $3,
			address = $4,
			city = $5,
			telephone = $6,
			email = $7
		WHERE id = $1
	`,
		o.ID,
		o.FirstName,
		o.LastName,
		o.Address,
		o.City,
		o.Telephone,
		o.Email,
	)
	if err != nil {
		return err
	}
	return affected(res, owners.ErrNotFound)
}

// Delete: pets, visits, vaccinations y appointments caen por ON DELETE CASCADE.
func (r *OwnersRepo) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affected(res, owners.ErrNotFound)
}

func (r *OwnersRepo) query(ctx context.Context, q string, args ...any) ([]owners.Owner, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// scanner cubre *sql.Row y *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanOwner(s scanner) (owners.Owner, error) {
	var o owners.Owner
	err := s.Scan(
		&o.ID,
		&o.FirstName,
		&o.LastName,
		&o.Address,
		&o.City,
		&o.Telephone,
		&o.Email,
	)
	return o, err
}
