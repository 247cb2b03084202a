package postgres

import (
	"context"
	"database/sql"

	"github.com/jeroenvanhattem/vethub/internal/domain/specialties"
	"github.com/jeroenvanhattem/vethub/internal/domain/vets"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

// Una fila por (vet, especialidad); los vets sin especialidades vienen con NULLs.
const vetSelect = `
	SELECT v.id, v.first_name, v.last_name, s.id, s.name
	FROM vets v
	LEFT JOIN vet_specialties vs ON vs.vet_id = v.id
	LEFT JOIN specialties s ON s.id = vs.specialty_id
`

func (r *VetsRepo) List(ctx context.Context) ([]vets.Vet, error) {
	return r.query(ctx, vetSelect+` ORDER BY v.id, s.id`)
}

func (r *VetsRepo) GetByID(ctx context.Context, id int64) (vets.Vet, error) {
	items, err := r.query(ctx, vetSelect+` WHERE v.id = $1 ORDER BY s.id`, id)
	if err != nil {
		return vets.Vet{}, err
	}
	if len(items) == 0 {
		return vets.Vet{}, vets.ErrNotFound
	}
	return items[0], nil
}

func (r *VetsRepo) Create(ctx context.Context, v vets.Vet) (vets.Vet, error) {
	c := conn(ctx, r.db)
	err := c.QueryRowContext(ctx, `
		INSERT INTO vets (first_name, last_name) VALUES ($1,$2) RETURNING id
	`, v.FirstName, v.LastName).Scan(&v.ID)
	if err != nil {
		return vets.Vet{}, err
	}

	if err := linkSpecialties(ctx, c, v.ID, v.Specialties); err != nil {
		return vets.Vet{}, err
	}
	return v, nil
}

// Update reemplaza el set completo de vínculos.
func (r *VetsRepo) Update(ctx context.Context, v vets.Vet) error {
	c := conn(ctx, r.db)
	res, err := c.ExecContext(ctx, `
		UPDATE vets SET first_name = $2, last_name = $3 WHERE id = $1
	`, v.ID, v.FirstName, v.LastName)
	if err != nil {
		return err
	}
	if err := affected(res, vets.ErrNotFound); err != nil {
		return err
	}

	if _, err := c.ExecContext(ctx, `DELETE FROM vet_specialties WHERE vet_id = $1`, v.ID); err != nil {
		return err
	}
	return linkSpecialties(ctx, c, v.ID, v.Specialties)
}

func (r *VetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM vets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affected(res, vets.ErrNotFound)
}

func linkSpecialties(ctx context.Context, c execer, vetID int64, sps []specialties.Specialty) error {
	for _, sp := range sps {
		if _, err := c.ExecContext(ctx, `
			INSERT INTO vet_specialties (vet_id, specialty_id) VALUES ($1,$2)
			ON CONFLICT DO NOTHING
		`, vetID, sp.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *VetsRepo) query(ctx context.Context, q string, args ...any) ([]vets.Vet, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Vet, 0)
	for rows.Next() {
		var (
			v      vets.Vet
			spID   sql.NullInt64
			spName sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName, &spID, &spName); err != nil {
			return nil, err
		}

		// filas ordenadas por vet: si se repite el id, es otra especialidad del mismo vet
		if n := len(out); n == 0 || out[n-1].ID != v.ID {
			v.Specialties = make([]specialties.Specialty, 0)
			out = append(out, v)
		}
		if spID.Valid {
			last := &out[len(out)-1]
			last.Specialties = append(last.Specialties, specialties.Specialty{ID: spID.Int64, Name: spName.String})
		}
	}
	return out, rows.Err()
}
