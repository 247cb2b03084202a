package owners

import "time"

// Owner es el dueño de una o más mascotas. Los campos opcionales vacíos
// se guardan como "".
type Owner struct {
	ID        int64
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
	Email     string
}

// PetSummary es la vista reducida de una mascota dentro de la respuesta del owner.
// La arma el módulo pets (ver PetLister) para no importar pets desde acá.
type PetSummary struct {
	ID        int64
	Name      string
	BirthDate time.Time
	TypeName  string
}
