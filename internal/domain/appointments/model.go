package appointments

import "time"

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Appointment es un turno de una mascota con un vet. No hay máquina de estados:
// cualquier estado puede pasar a cualquier otro.
// PetName y VetFirstName/VetLastName se completan en lecturas.
type Appointment struct {
	ID          int64
	ScheduledAt time.Time
	Reason      string
	Status      Status
	PetID       int64
	VetID       int64

	PetName      string
	VetFirstName string
	VetLastName  string
}
