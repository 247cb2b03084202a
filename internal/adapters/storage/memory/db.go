package memory

import (
	"context"
	"errors"
	"maps"
	"sort"
	"sync"

	"github.com/jeroenvanhattem/vethub/internal/domain/appointments"
	"github.com/jeroenvanhattem/vethub/internal/domain/owners"
	"github.com/jeroenvanhattem/vethub/internal/domain/pets"
	"github.com/jeroenvanhattem/vethub/internal/domain/pettypes"
	"github.com/jeroenvanhattem/vethub/internal/domain/specialties"
	"github.com/jeroenvanhattem/vethub/internal/domain/vaccinations"
	"github.com/jeroenvanhattem/vethub/internal/domain/vets"
	"github.com/jeroenvanhattem/vethub/internal/domain/visits"
)

// ErrPetTypeInUse replica la FK RESTRICT de postgres.
var ErrPetTypeInUse = errors.New("pet type is referenced by pets")

type vetSpecialty struct {
	VetID       int64
	SpecialtyID int64
}

// tables es el estado completo; se copia entero para poder hacer rollback.
// Las filas guardan solo ids: los nombres relacionados se completan al leer.
type tables struct {
	owners         map[int64]owners.Owner
	petTypes       map[int64]pettypes.PetType
	pets           map[int64]pets.Pet
	visits         map[int64]visits.Visit
	vaccinations   map[int64]vaccinations.Vaccination
	specialties    map[int64]specialties.Specialty
	vets           map[int64]vets.Vet
	vetSpecialties map[vetSpecialty]struct{}
	appointments   map[int64]appointments.Appointment
}

func (t tables) clone() tables {
	return tables{
		owners:         maps.Clone(t.owners),
		petTypes:       maps.Clone(t.petTypes),
		pets:           maps.Clone(t.pets),
		visits:         maps.Clone(t.visits),
		vaccinations:   maps.Clone(t.vaccinations),
		specialties:    maps.Clone(t.specialties),
		vets:           maps.Clone(t.vets),
		vetSpecialties: maps.Clone(t.vetSpecialties),
		appointments:   maps.Clone(t.appointments),
	}
}

// DB es el store en memoria compartido por todos los repos. Un solo lock
// cubre todas las tablas para que los borrados en cascada sean atómicos.
type DB struct {
	mu   sync.RWMutex
	data tables
	seq  map[string]int64

	// txMu serializa las unidades de trabajo y las escrituras sueltas (ver lock).
	txMu sync.Mutex
}

func NewDB() *DB {
	return &DB{
		data: tables{
			owners:         make(map[int64]owners.Owner),
			petTypes:       make(map[int64]pettypes.PetType),
			pets:           make(map[int64]pets.Pet),
			visits:         make(map[int64]visits.Visit),
			vaccinations:   make(map[int64]vaccinations.Vaccination),
			specialties:    make(map[int64]specialties.Specialty),
			vets:           make(map[int64]vets.Vet),
			vetSpecialties: make(map[vetSpecialty]struct{}),
			appointments:   make(map[int64]appointments.Appointment),
		},
		seq: make(map[string]int64),
	}
}

// lock toma mu en escritura. Fuera de una unidad de trabajo también espera
// txMu: un rollback restaura el snapshot completo y no debe pisar escrituras
// que no le pertenecen.
func (db *DB) lock(ctx context.Context) (unlock func()) {
	if !db.inTx(ctx) {
		db.txMu.Lock()
		db.mu.Lock()
		return func() {
			db.mu.Unlock()
			db.txMu.Unlock()
		}
	}
	db.mu.Lock()
	return db.mu.Unlock
}

func (db *DB) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*DB)
	return owner == db
}

// nextID se comporta como una secuencia: no se reutiliza ni vuelve atrás en rollback.
// Requiere mu tomado.
func (db *DB) nextID(table string) int64 {
	db.seq[table]++
	return db.seq[table]
}

// Los helpers de cascada asumen mu tomado en escritura.

func (db *DB) deletePetCascade(petID int64) {
	delete(db.data.pets, petID)
	for id, v := range db.data.visits {
		if v.PetID == petID {
			delete(db.data.visits, id)
		}
	}
	for id, v := range db.data.vaccinations {
		if v.PetID == petID {
			delete(db.data.vaccinations, id)
		}
	}
	for id, a := range db.data.appointments {
		if a.PetID == petID {
			delete(db.data.appointments, id)
		}
	}
}

func (db *DB) deleteOwnerCascade(ownerID int64) {
	delete(db.data.owners, ownerID)
	for id, p := range db.data.pets {
		if p.OwnerID == ownerID {
			db.deletePetCascade(id)
		}
	}
}

func (db *DB) deleteVetCascade(vetID int64) {
	delete(db.data.vets, vetID)
	for link := range db.data.vetSpecialties {
		if link.VetID == vetID {
			delete(db.data.vetSpecialties, link)
		}
	}
	for id, a := range db.data.appointments {
		if a.VetID == vetID {
			delete(db.data.appointments, id)
		}
	}
}

func (db *DB) unlinkSpecialty(specialtyID int64) {
	for link := range db.data.vetSpecialties {
		if link.SpecialtyID == specialtyID {
			delete(db.data.vetSpecialties, link)
		}
	}
}

// specialtiesOf devuelve las especialidades del vet ordenadas por id.
func (db *DB) specialtiesOf(vetID int64) []specialties.Specialty {
	out := make([]specialties.Specialty, 0)
	for link := range db.data.vetSpecialties {
		if link.VetID != vetID {
			continue
		}
		if sp, ok := db.data.specialties[link.SpecialtyID]; ok {
			out = append(out, sp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (db *DB) setSpecialties(vetID int64, sps []specialties.Specialty) {
	for link := range db.data.vetSpecialties {
		if link.VetID == vetID {
			delete(db.data.vetSpecialties, link)
		}
	}
	for _, sp := range sps {
		if _, ok := db.data.specialties[sp.ID]; ok {
			db.data.vetSpecialties[vetSpecialty{VetID: vetID, SpecialtyID: sp.ID}] = struct{}{}
		}
	}
}

// sortedByID arma un slice ordenado por id a partir de un mapa, filtrando con keep.
func sortedByID[T any](m map[int64]T, keep func(T) bool) []T {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}
