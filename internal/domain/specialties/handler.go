package specialties

import (
	"net/http"

	"github.com/jeroenvanhattem/vethub/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/specialties", func(sr chi.Router) {
		sr.Get("/", listSpecialtiesHandler(svc))
		sr.Post("/", createSpecialtyHandler(svc))
		sr.Get("/{specialtyId}", getSpecialtyHandler(svc))
		sr.Put("/{specialtyId}", updateSpecialtyHandler(svc))
		sr.Delete("/{specialtyId}", deleteSpecialtyHandler(svc))
	})
}

// Sin reglas de campo: el nombre se persiste tal cual llega.
type specialtyRequest struct {
	Name string `json:"name"`
}

// SpecialtyResponse se reutiliza dentro de la respuesta de vets.
type SpecialtyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ToResponse(sp Specialty) SpecialtyResponse {
	return SpecialtyResponse{ID: sp.ID, Name: sp.Name}
}

func listSpecialtiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		out := make([]SpecialtyResponse, 0, len(items))
		for _, sp := range items {
			out = append(out, ToResponse(sp))
		}
		httpx.JSON(w, r, http.StatusOK, out)
	}
}

func getSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "specialtyId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		sp, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, ToResponse(sp))
	}
}

func createSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req specialtyRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.Error(w, r, err)
			return
		}

		sp, err := svc.Create(r.Context(), Input(req))
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusCreated, ToResponse(sp))
	}
}

func updateSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "specialtyId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		var req specialtyRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.Error(w, r, err)
			return
		}

		sp, err := svc.Update(r.Context(), id, Input(req))
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, ToResponse(sp))
	}
}

func deleteSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "specialtyId")
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
