package pets

import (
	"time"

	"github.com/jeroenvanhattem/vethub/internal/domain/pettypes"
)

// Pet representa una mascota registrada bajo un owner.
// En lecturas Type viene completo (id + nombre); en escrituras solo importa Type.ID.
type Pet struct {
	ID        int64
	Name      string
	BirthDate time.Time
	OwnerID   int64
	Type      pettypes.PetType
}

// Ref identifica una mascota desde una ruta. OwnerID 0 = ruta global (/pets/{petId}),
// sin chequeo de pertenencia.
type Ref struct {
	OwnerID int64
	PetID   int64
}

// VisitSummary es la vista reducida de una visita dentro de la respuesta de la mascota.
type VisitSummary struct {
	ID          int64
	Date        time.Time
	Description string
}
