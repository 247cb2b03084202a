package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jeroenvanhattem/vethub/internal/domain/visits"
)

type VisitsRepo struct {
	db *sql.DB
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

const visitSelect = `SELECT id, visit_date, description, pet_id FROM visits`

func (r *VisitsRepo) List(ctx context.Context) ([]visits.Visit, error) {
	return r.query(ctx, visitSelect+` ORDER BY id`)
}

func (r *VisitsRepo) ListByPet(ctx context.Context, petID int64) ([]visits.Visit, error) {
	return r.query(ctx, visitSelect+` WHERE pet_id = $1 ORDER BY id`, petID)
}

func (r *VisitsRepo) GetByID(ctx context.Context, id int64) (visits.Visit, error) {
	v, err := scanVisit(conn(ctx, r.db).QueryRowContext(ctx, visitSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return visits.Visit{}, visits.ErrNotFound
		}
		return visits.Visit{}, err
	}
	return v, nil
}

func (r *VisitsRepo) Create(ctx context.Context, v visits.Visit) (visits.Visit, error) {
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO visits (visit_date, description, pet_id)
		VALUES ($1,$2,$3)
		RETURNING id
	`, v.Date, v.Description, v.PetID).Scan(&v.ID)
	return v, err
}

func (r *VisitsRepo) Update(ctx context.Context, v visits.Visit) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE visits SET visit_date = $2, description = $3 WHERE id = $1
	`, v.ID, v.Date, v.Description)
	if err != nil {
		return err
	}
	return affected(res, visits.ErrNotFound)
}

func (r *VisitsRepo) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM visits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affected(res, visits.ErrNotFound)
}

func (r *VisitsRepo) query(ctx context.Context, q string, args ...any) ([]visits.Visit, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]visits.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanVisit(s scanner) (visits.Visit, error) {
	var v visits.Visit
	err := s.Scan(&v.ID, &v.Date, &v.Description, &v.PetID)
	v.Date = v.Date.UTC()
	return v, err
}
