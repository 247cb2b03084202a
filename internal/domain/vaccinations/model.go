package vaccinations

import "time"

// Vaccination es una vacuna aplicada a una mascota. PetName se completa en lecturas.
type Vaccination struct {
	ID              int64
	VaccineName     string
	VaccinationDate time.Time
	NextDueDate     *time.Time
	PetID           int64
	PetName         string
}
