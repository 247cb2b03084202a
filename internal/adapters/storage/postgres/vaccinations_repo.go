package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jeroenvanhattem/vethub/internal/domain/vaccinations"
)

type VaccinationsRepo struct {
	db *sql.DB
}

func NewVaccinationsRepo(db *sql.DB) *VaccinationsRepo {
	return &VaccinationsRepo{db: db}
}

const vaccinationSelect = `
	SELECT v.id, v.vaccine_name, v.vaccination_date, v.next_due_date, v.pet_id, p.name
	FROM vaccinations v
	JOIN pets p ON p.id = v.pet_id
`

func (r *VaccinationsRepo) List(ctx context.Context) ([]vaccinations.Vaccination, error) {
	return r.query(ctx, vaccinationSelect+` ORDER BY v.id`)
}

func (r *VaccinationsRepo) ListByPet(ctx context.Context, petID int64) ([]vaccinations.Vaccination, error) {
	return r.query(ctx, vaccinationSelect+` WHERE v.pet_id = $1 ORDER BY v.id`, petID)
}

func (r *VaccinationsRepo) GetByID(ctx context.Context, id int64) (vaccinations.Vaccination, error) {
	v, err := scanVaccination(conn(ctx, r.db).QueryRowContext(ctx, vaccinationSelect+` WHERE v.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vaccinations.Vaccination{}, vaccinations.ErrNotFound
		}
		return vaccinations.Vaccination{}, err
	}
	return v, nil
}

func (r *VaccinationsRepo) Create(ctx context.Context, v vaccinations.Vaccination) (vaccinations.Vaccination, error) {
	c := conn(ctx, r.db)
	err := c.QueryRowContext(ctx, `
		INSERT INTO vaccinations (vaccine_name, vaccination_date, next_due_date, pet_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`,
		v.VaccineName,
		v.VaccinationDate,
		toNullDate(v.NextDueDate),
		v.PetID,
	).Scan(&v.ID)
	if err != nil {
		return vaccinations.Vaccination{}, err
	}

	if err := c.QueryRowContext(ctx, `SELECT name FROM pets WHERE id = $1`, v.PetID).Scan(&v.PetName); err != nil {
		return vaccinations.Vaccination{}, err
	}
	return v, nil
}

func (r *VaccinationsRepo) Update(ctx context.Context, v vaccinations.Vaccination) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE vaccinations
		SET
			vaccine_name = $2,
			vaccination_date = $3,
			next_due_date = $4
		WHERE id = $1
	`,
		v.ID,
		v.VaccineName,
		v.VaccinationDate,
		toNullDate(v.NextDueDate),
	)
	if err != nil {
		return err
	}
	return affected(res, vaccinations.ErrNotFound)
}

func (r *VaccinationsRepo) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM vaccinations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affected(res, vaccinations.ErrNotFound)
}

func (r *VaccinationsRepo) query(ctx context.Context, q string, args ...any) ([]vaccinations.Vaccination, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vaccinations.Vaccination, 0)
	for rows.Next() {
		v, err := scanVaccination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanVaccination(s scanner) (vaccinations.Vaccination, error) {
	var v vaccinations.Vaccination
	var next sql.NullTime
	if err := s.Scan(
		&v.ID,
		&v.VaccineName,
		&v.VaccinationDate,
		&next,
		&v.PetID,
		&v.PetName,
	); err != nil {
		return vaccinations.Vaccination{}, err
	}

	v.VaccinationDate = v.VaccinationDate.UTC()
	if next.Valid {
		t := next.Time.UTC()
		v.NextDueDate = &t
	}
	return v, nil
}

// next_due_date es DATE nullable
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
