package pettypes

import (
	"net/http"

	"github.com/jeroenvanhattem/vethub/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pet-types", func(pr chi.Router) {
		pr.Get("/", listPetTypesHandler(svc))
		pr.Post("/", createPetTypeHandler(svc))
		pr.Get("/{petTypeId}", getPetTypeHandler(svc))
		pr.Put("/{petTypeId}", updatePetTypeHandler(svc))
		pr.Delete("/{petTypeId}", deletePetTypeHandler(svc))
	})
}

type petTypeRequest struct {
	Name string `json:"name" validate:"notblank"`
}

type petTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func listPetTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		out := make([]petTypeResponse, 0, len(items))
		for _, pt := range items {
			out = append(out, toPetTypeResponse(pt))
		}
		httpx.JSON(w, r, http.StatusOK, out)
	}
}

func getPetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "petTypeId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		pt, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toPetTypeResponse(pt))
	}
}

func createPetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petTypeRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.Error(w, r, err)
			return
		}

		pt, err := svc.Create(r.Context(), Input{Name: req.Name})
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusCreated, toPetTypeResponse(pt))
	}
}

func updatePetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "petTypeId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		var req petTypeRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.Error(w, r, err)
			return
		}

		pt, err := svc.Update(r.Context(), id, Input{Name: req.Name})
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toPetTypeResponse(pt))
	}
}

func deletePetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "petTypeId")
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

func toPetTypeResponse(pt PetType) petTypeResponse {
	return petTypeResponse{ID: pt.ID, Name: pt.Name}
}
