package vets

import (
	"net/http"
	"sort"

	"github.com/jeroenvanhattem/vethub/internal/domain/specialties"
	"github.com/jeroenvanhattem/vethub/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/vets", listVetsHandler(svc))
	r.Post("/vets", createVetHandler(svc))
	r.Get("/vets/{vetId}", getVetHandler(svc))
	r.Put("/vets/{vetId}", updateVetHandler(svc))
	r.Delete("/vets/{vetId}", deleteVetHandler(svc))
}

type vetRequest struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	SpecialtyIDs []int64 `json:"specialtyIds"`
}

type vetResponse struct {
	ID          int64                           `json:"id"`
	FirstName   string                          `json:"firstName"`
	LastName    string                          `json:"lastName"`
	Specialties []specialties.SpecialtyResponse `json:"specialties"`
}

func listVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		out := make([]vetResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVetResponse(v))
		}
		httpx.JSON(w, r, http.StatusOK, out)
	}
}

func getVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "vetId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		v, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toVetResponse(v))
	}
}

func createVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req vetRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.Error(w, r, err)
			return
		}

		v, err := svc.Create(r.Context(), Input(req))
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusCreated, toVetResponse(v))
	}
}

func updateVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "vetId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		var req vetRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.Error(w, r, err)
			return
		}

		v, err := svc.Update(r.Context(), id, Input(req))
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toVetResponse(v))
	}
}

func deleteVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "vetId")
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

// toVetResponse ordena las especialidades por id: es el único orden
// garantizado de la API.
func toVetResponse(v Vet) vetResponse {
	sps := make([]specialties.SpecialtyResponse, 0, len(v.Specialties))
	for _, sp := range v.Specialties {
		sps = append(sps, specialties.ToResponse(sp))
	}
	sort.Slice(sps, func(i, j int) bool { return sps[i].ID < sps[j].ID })

	return vetResponse{
		ID:          v.ID,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		Specialties: sps,
	}
}
