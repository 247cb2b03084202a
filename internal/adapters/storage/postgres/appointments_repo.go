package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jeroenvanhattem/vethub/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

const appointmentSelect = `
	SELECT a.id, a.scheduled_at, a.reason, a.status, a.pet_id, a.vet_id,
	       p.name, v.first_name, v.last_name
	FROM appointments a
	JOIN pets p ON p.id = a.pet_id
	JOIN vets v ON v.id = a.vet_id
`

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	return r.query(ctx, appointmentSelect+` ORDER BY a.id`)
}

func (r *AppointmentsRepo) ListByPet(ctx context.Context, petID int64) ([]appointments.Appointment, error) {
	return r.query(ctx, appointmentSelect+` WHERE a.pet_id = $1 ORDER BY a.id`, petID)
}

func (r *AppointmentsRepo) ListByVet(ctx context.Context, vetID int64) ([]appointments.Appointment, error) {
	return r.query(ctx, appointmentSelect+` WHERE a.vet_id = $1 ORDER BY a.id`, vetID)
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	a, err := scanAppointment(conn(ctx, r.db).QueryRowContext(ctx, appointmentSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	var id int64
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO appointments (scheduled_at, reason, status, pet_id, vet_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		a.ScheduledAt,
		a.Reason,
		string(a.Status),
		a.PetID,
		a.VetID,
	).Scan(&id)
	if err != nil {
		return appointments.Appointment{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE appointments
		SET
			scheduled_at = $2,
			reason = $3,
			status = $4
		WHERE id = $1
	`,
		a.ID,
		a.ScheduledAt,
		a.Reason,
		string(a.Status),
	)
	if err != nil {
		return err
	}
	return affected(res, appointments.ErrNotFound)
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affected(res, appointments.ErrNotFound)
}

func (r *AppointmentsRepo) query(ctx context.Context, q string, args ...any) ([]appointments.Appointment, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAppointment(s scanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	var status string
	if err := s.Scan(
		&a.ID,
		&a.ScheduledAt,
		&a.Reason,
		&status,
		&a.PetID,
		&a.VetID,
		&a.PetName,
		&a.VetFirstName,
		&a.VetLastName,
	); err != nil {
		return appointments.Appointment{}, err
	}

	a.Status = appointments.Status(status)
	a.ScheduledAt = a.ScheduledAt.UTC()
	return a, nil
}
