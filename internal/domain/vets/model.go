package vets

import "github.com/jeroenvanhattem/vethub/internal/domain/specialties"

// Vet se vincula con especialidades many-to-many. El orden de Specialties
// no está garantizado; la respuesta HTTP las ordena por id.
type Vet struct {
	ID          int64
	FirstName   string
	LastName    string
	Specialties []specialties.Specialty
}
