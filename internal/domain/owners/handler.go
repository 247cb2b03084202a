package owners

import (
	"errors"
	"net/http"

	"github.com/jeroenvanhattem/vethub/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registra /owners. Las rutas anidadas (/owners/{ownerId}/pets/...)
// las monta cada módulo hijo sobre el mismo router.
func RegisterRoutes(r chi.Router, svc *Service, pets PetLister) {
	r.Get("/owners", listOwnersHandler(svc, pets))
	r.Post("/owners", createOwnerHandler(svc, pets))
	r.Get("/owners/{ownerId}", getOwnerHandler(svc, pets))
	r.Put("/owners/{ownerId}", updateOwnerHandler(svc, pets))
	r.Delete("/owners/{ownerId}", deleteOwnerHandler(svc))
}

type ownerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
}

type ownerResponse struct {
	ID        int64             `json:"id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Address   string            `json:"address"`
	City      string            `json:"city"`
	Telephone string            `json:"telephone"`
	Email     string            `json:"email"`
	Pets      []petSummaryEntry `json:"pets"`
}

type petSummaryEntry struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	TypeName  string `json:"typeName"`
}

func listOwnersHandler(svc *Service, pets PetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// ?lastName= presente (aunque vacío) filtra; ausente lista todo.
		var lastName *string
		if q := r.URL.Query(); q.Has("lastName") {
			v := q.Get("lastName")
			lastName = &v
		}

		items, err := svc.FindByLastName(r.Context(), lastName)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			resp, err := buildOwnerResponse(r, pets, o)
			if err != nil {
				httpx.Error(w, r, err)
				return
			}
			out = append(out, resp)
		}
		httpx.JSON(w, r, http.StatusOK, out)
	}
}

func getOwnerHandler(svc *Service, pets PetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "ownerId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		o, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		writeOwner(w, r, pets, http.StatusOK, o)
	}
}

func createOwnerHandler(svc *Service, pets PetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerRequest
		var in *CreateInput

		// body ausente => in nil, y el validator responde BODY_IS_MISSING
		err := httpx.DecodeJSON(r, &req)
		switch {
		case errors.Is(err, httpx.ErrEmptyBody):
		case err != nil:
			httpx.Error(w, r, err)
			return
		default:
			c := CreateInput(req)
			in = &c
		}

		o, err := svc.Create(r.Context(), in)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		writeOwner(w, r, pets, http.StatusCreated, o)
	}
}

func updateOwnerHandler(svc *Service, pets PetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "ownerId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		var req ownerRequest
		var in *UpdateInput

		err = httpx.DecodeJSON(r, &req)
		switch {
		case errors.Is(err, httpx.ErrEmptyBody):
		case err != nil:
			httpx.Error(w, r, err)
			return
		default:
			u := UpdateInput(req)
			in = &u
		}

		o, err := svc.Update(r.Context(), id, in)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		writeOwner(w, r, pets, http.StatusOK, o)
	}
}

func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "ownerId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.NoContent(w, r)
	}
}

func writeOwner(w http.ResponseWriter, r *http.Request, pets PetLister, status int, o Owner) {
	resp, err := buildOwnerResponse(r, pets, o)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, r, status, resp)
}

// Las mascotas se cargan por owner_id al armar la respuesta; el Owner no las guarda.
func buildOwnerResponse(r *http.Request, pets PetLister, o Owner) (ownerResponse, error) {
	summaries, err := pets.SummariesByOwner(r.Context(), o.ID)
	if err != nil {
		return ownerResponse{}, err
	}

	entries := make([]petSummaryEntry, 0, len(summaries))
	for _, p := range summaries {
		entries = append(entries, petSummaryEntry{
			ID:        p.ID,
			Name:      p.Name,
			BirthDate: httpx.FormatDate(p.BirthDate),
			TypeName:  p.TypeName,
		})
	}

	return ownerResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
		Email:     o.Email,
		Pets:      entries,
	}, nil
}
