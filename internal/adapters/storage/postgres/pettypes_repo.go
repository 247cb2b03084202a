package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jeroenvanhattem/vethub/internal/domain/pettypes"
)

type PetTypesRepo struct {
	db *sql.DB
}

func NewPetTypesRepo(db *sql.DB) *PetTypesRepo {
	return &PetTypesRepo{db: db}
}

func (r *PetTypesRepo) List(ctx context.Context) ([]pettypes.PetType, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `SELECT id, name FROM pet_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pettypes.PetType, 0)
	for rows.Next() {
		var pt pettypes.PetType
		if err := rows.Scan(&pt.ID, &pt.Name); err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, rows.Err()
}

func (r *PetTypesRepo) GetByID(ctx context.Context, id int64) (pettypes.PetType, error) {
	var pt pettypes.PetType
	err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT id, name FROM pet_types WHERE id = $1`, id).Scan(&pt.ID, &pt.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pettypes.PetType{}, pettypes.ErrNotFound
		}
		return pettypes.PetType{}, err
	}
	return pt, nil
}

func (r *PetTypesRepo) Create(ctx context.Context, pt pettypes.PetType) (pettypes.PetType, error) {
	err := conn(ctx, r.db).QueryRowContext(ctx, `INSERT INTO pet_types (name) VALUES ($1) RETURNING id`, pt.Name).Scan(&pt.ID)
	return pt, err
}

func (r *PetTypesRepo) Update(ctx context.Context, pt pettypes.PetType) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `UPDATE pet_types SET name = $2 WHERE id = $1`, pt.ID, pt.Name)
	if err != nil {
		return err
	}
	return affected(res, pettypes.ErrNotFound)
}

// Delete falla por FK si quedan mascotas con este tipo.
func (r *PetTypesRepo) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM pet_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affected(res, pettypes.ErrNotFound)
}
