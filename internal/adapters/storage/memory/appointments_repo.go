package memory

import (
	"context"

	"github.com/jeroenvanhattem/vethub/internal/domain/appointments"
)

type appointmentRepo struct {
	db *DB
}

func NewAppointmentRepo(db *DB) appointments.Repository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.withNames(sortedByID(r.db.data.appointments, nil)), nil
}

func (r *appointmentRepo) ListByPet(ctx context.Context, petID int64) ([]appointments.Appointment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.withNames(sortedByID(r.db.data.appointments, func(a appointments.Appointment) bool {
		return a.PetID == petID
	})), nil
}

func (r *appointmentRepo) ListByVet(ctx context.Context, vetID int64) ([]appointments.Appointment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.withNames(sortedByID(r.db.data.appointments, func(a appointments.Appointment) bool {
		return a.VetID == vetID
	})), nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	a, ok := r.db.data.appointments[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return r.fill(a), nil
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	defer r.db.lock(ctx)()

	a.ID = r.db.nextID("appointments")
	r.db.data.appointments[a.ID] = strip(a)
	return r.fill(a), nil
}

func (r *appointmentRepo) Update(ctx context.Context, a appointments.Appointment) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.appointments[a.ID]; !exists {
		return appointments.ErrNotFound
	}
	r.db.data.appointments[a.ID] = strip(a)
	return nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id int64) error {
	defer r.db.lock(ctx)()

	if _, exists := r.db.data.appointments[id]; !exists {
		return appointments.ErrNotFound
	}
	delete(r.db.data.appointments, id)
	return nil
}

func (r *appointmentRepo) fill(a appointments.Appointment) appointments.Appointment {
	a.PetName = r.db.data.pets[a.PetID].Name
	v := r.db.data.vets[a.VetID]
	a.VetFirstName = v.FirstName
	a.VetLastName = v.LastName
	return a
}

func (r *appointmentRepo) withNames(items []appointments.Appointment) []appointments.Appointment {
	for i := range items {
		items[i] = r.fill(items[i])
	}
	return items
}

// strip descarta los campos de lectura antes de guardar la fila.
func strip(a appointments.Appointment) appointments.Appointment {
	a.PetName, a.VetFirstName, a.VetLastName = "", "", ""
	return a
}
