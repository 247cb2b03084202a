package pets

import (
	"net/http"

	"github.com/jeroenvanhattem/vethub/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, visits VisitLister) {
	// Mascotas de un owner
	r.Get("/owners/{ownerId}/pets", listOwnerPetsHandler(svc, visits))
	r.Post("/owners/{ownerId}/pets", createOwnerPetHandler(svc, visits))
	r.Get("/owners/{ownerId}/pets/{petId}", getPetHandler(svc, visits, true))
	r.Put("/owners/{ownerId}/pets/{petId}", updatePetHandler(svc, visits, true))
	r.Delete("/owners/{ownerId}/pets/{petId}", deletePetHandler(svc, true))

	// Acceso global por id
	r.Get("/pets", listPetsHandler(svc, visits))
	r.Post("/pets", createPetHandler(svc, visits))
	r.Get("/pets/{petId}", getPetHandler(svc, visits, false))
	r.Put("/pets/{petId}", updatePetHandler(svc, visits, false))
	r.Delete("/pets/{petId}", deletePetHandler(svc, false))
}

type petRequest struct {
	Name      string `json:"name" validate:"notblank"`
	BirthDate string `json:"birthDate" validate:"required"`
	TypeID    int64  `json:"typeId" validate:"required"`
}

// En /pets el owner viaja en el body.
type globalPetRequest struct {
	Name      string `json:"name" validate:"notblank"`
	BirthDate string `json:"birthDate" validate:"required"`
	TypeID    int64  `json:"typeId" validate:"required"`
	OwnerID   int64  `json:"ownerId" validate:"required"`
}

type petResponse struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	BirthDate string       `json:"birthDate"`
	Type      petTypeEntry `json:"type"`
	OwnerID   int64        `json:"ownerId"`
	Visits    []visitEntry `json:"visits"`
}

type petTypeEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type visitEntry struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func listOwnerPetsHandler(svc *Service, visits VisitLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := httpx.PathID(r, "ownerId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		items, err := svc.ListByOwner(r.Context(), ownerID)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		writePets(w, r, visits, items)
	}
}

func listPetsHandler(svc *Service, visits VisitLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		writePets(w, r, visits, items)
	}
}

func getPetHandler(svc *Service, visits VisitLister, nested bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, err := refFromPath(r, nested)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		p, err := svc.Get(r.Context(), ref)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		writePet(w, r, visits, http.StatusOK, p)
	}
}

func createOwnerPetHandler(svc *Service, visits VisitLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := httpx.PathID(r, "ownerId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		var req petRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.Error(w, r, err)
			return
		}
		in, err := toInput(req)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		p, err := svc.Create(r.Context(), ownerID, in)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		writePet(w, r, visits, http.StatusCreated, p)
	}
}

func createPetHandler(svc *Service, visits VisitLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req globalPetRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.Error(w, r, err)
			return
		}
		in, err := toInput(petRequest{Name: req.Name, BirthDate: req.BirthDate, TypeID: req.TypeID})
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		p, err := svc.Create(r.Context(), req.OwnerID, in)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		writePet(w, r, visits, http.StatusCreated, p)
	}
}

func updatePetHandler(svc *Service, visits VisitLister, nested bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, err := refFromPath(r, nested)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		var req petRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.Error(w, r, err)
			return
		}
		in, err := toInput(req)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		p, err := svc.Update(r.Context(), ref, in)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		writePet(w, r, visits, http.StatusOK, p)
	}
}

func deletePetHandler(svc *Service, nested bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, err := refFromPath(r, nested)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), ref); err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.NoContent(w, r)
	}
}

// RefFromPath lee {ownerId} (solo en rutas anidadas) y {petId}.
// La usan también visits y vaccinations.
func RefFromPath(r *http.Request) (Ref, error) {
	ids, err := httpx.PathIDs(r, "ownerId", "petId")
	if err != nil {
		return Ref{}, err
	}
	return Ref{OwnerID: ids[0], PetID: ids[1]}, nil
}

func refFromPath(r *http.Request, nested bool) (Ref, error) {
	if nested {
		return RefFromPath(r)
	}
	id, err := httpx.PathID(r, "petId")
	if err != nil {
		return Ref{}, err
	}
	return Ref{PetID: id}, nil
}

func toInput(req petRequest) (Input, error) {
	var d httpx.Dates
	bd := d.Date("birthDate", req.BirthDate)
	if err := d.Err(); err != nil {
		return Input{}, err
	}
	return Input{Name: req.Name, BirthDate: bd, TypeID: req.TypeID}, nil
}

func writePets(w http.ResponseWriter, r *http.Request, visits VisitLister, items []Pet) {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		resp, err := buildPetResponse(r, visits, p)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		out = append(out, resp)
	}
	httpx.JSON(w, r, http.StatusOK, out)
}

func writePet(w http.ResponseWriter, r *http.Request, visits VisitLister, status int, p Pet) {
	resp, err := buildPetResponse(r, visits, p)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, r, status, resp)
}

func buildPetResponse(r *http.Request, visits VisitLister, p Pet) (petResponse, error) {
	vs, err := visits.SummariesByPet(r.Context(), p.ID)
	if err != nil {
		return petResponse{}, err
	}

	entries := make([]visitEntry, 0, len(vs))
	for _, v := range vs {
		entries = append(entries, visitEntry{
			ID:          v.ID,
			Date:        httpx.FormatDate(v.Date),
			Description: v.Description,
		})
	}

	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: httpx.FormatDate(p.BirthDate),
		Type:      petTypeEntry{ID: p.Type.ID, Name: p.Type.Name},
		OwnerID:   p.OwnerID,
		Visits:    entries,
	}, nil
}
