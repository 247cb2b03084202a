package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jeroenvanhattem/vethub/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petSelect = `
	SELECT p.id, p.name, p.birth_date, p.owner_id, t.id, t.name
	FROM pets p
	JOIN pet_types t ON t.id = p.type_id
`

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.query(ctx, petSelect+` ORDER BY p.id`)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	return r.query(ctx, petSelect+` WHERE p.owner_id = $1 ORDER BY p.id`, ownerID)
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	p, err := scanPet(conn(ctx, r.db).QueryRowContext(ctx, petSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO pets (name, birth_date, owner_id, type_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`,
		p.Name,
		p.BirthDate,
		p.OwnerID,
		p.Type.ID,
	).Scan(&p.ID)
	return p, err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			birth_date = $3,
			type_id = $4
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.BirthDate,
		p.Type.ID,
	)
	if err != nil {
		return err
	}
	return affected(res, pets.ErrNotFound)
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affected(res, pets.ErrNotFound)
}

func (r *PetsRepo) query(ctx context.Context, q string, args ...any) ([]pets.Pet, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.BirthDate,
		&p.OwnerID,
		&p.Type.ID,
		&p.Type.Name,
	)
	// birth_date es DATE: pgx lo trae como medianoche UTC
	p.BirthDate = p.BirthDate.UTC()
	return p, err
}
