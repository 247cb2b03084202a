package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jeroenvanhattem/vethub/internal/domain/specialties"
)

type SpecialtiesRepo struct {
	db *sql.DB
}

func NewSpecialtiesRepo(db *sql.DB) *SpecialtiesRepo {
	return &SpecialtiesRepo{db: db}
}

func (r *SpecialtiesRepo) List(ctx context.Context) ([]specialties.Specialty, error) {
	return r.query(ctx, `SELECT id, name FROM specialties ORDER BY id`)
}

func (r *SpecialtiesRepo) GetByID(ctx context.Context, id int64) (specialties.Specialty, error) {
	var sp specialties.Specialty
	err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT id, name FROM specialties WHERE id = $1`, id).Scan(&sp.ID, &sp.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return specialties.Specialty{}, specialties.ErrNotFound
		}
		return specialties.Specialty{}, err
	}
	return sp, nil
}

func (r *SpecialtiesRepo) ListByIDs(ctx context.Context, ids []int64) ([]specialties.Specialty, error) {
	if len(ids) == 0 {
		return []specialties.Specialty{}, nil
	}
	return r.query(ctx, `SELECT id, name FROM specialties WHERE id = ANY($1) ORDER BY id`, ids)
}

func (r *SpecialtiesRepo) Create(ctx context.Context, sp specialties.Specialty) (specialties.Specialty, error) {
	err := conn(ctx, r.db).QueryRowContext(ctx, `INSERT INTO specialties (name) VALUES ($1) RETURNING id`, sp.Name).Scan(&sp.ID)
	return sp, err
}

func (r *SpecialtiesRepo) Update(ctx context.Context, sp specialties.Specialty) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `UPDATE specialties SET name = $2 WHERE id = $1`, sp.ID, sp.Name)
	if err != nil {
		return err
	}
	return affected(res, specialties.ErrNotFound)
}

// Delete: los vínculos en vet_specialties caen por cascade.
func (r *SpecialtiesRepo) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM specialties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affected(res, specialties.ErrNotFound)
}

func (r *SpecialtiesRepo) query(ctx context.Context, q string, args ...any) ([]specialties.Specialty, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]specialties.Specialty, 0)
	for rows.Next() {
		var sp specialties.Specialty
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}
