package visits

import (
	"net/http"

	"github.com/jeroenvanhattem/vethub/internal/domain/pets"
	"github.com/jeroenvanhattem/vethub/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	const nested = "/owners/{ownerId}/pets/{petId}/visits"

	r.Get(nested, listPetVisitsHandler(svc))
	r.Post(nested, createPetVisitHandler(svc))
	r.Get(nested+"/{visitId}", getVisitHandler(svc, true))
	r.Put(nested+"/{visitId}", updateVisitHandler(svc, true))
	r.Delete(nested+"/{visitId}", deleteVisitHandler(svc, true))

	r.Get("/visits", listVisitsHandler(svc))
	r.Post("/visits", createVisitHandler(svc))
	r.Get("/visits/{visitId}", getVisitHandler(svc, false))
	r.Put("/visits/{visitId}", updateVisitHandler(svc, false))
	r.Delete("/visits/{visitId}", deleteVisitHandler(svc, false))
}

// description obligatoria tanto en alta como en modificación.
type visitRequest struct {
	Date        string `json:"date" validate:"required"`
	Description string `json:"description" validate:"notblank"`
}

type globalVisitRequest struct {
	Date        string `json:"date" validate:"required"`
	Description string `json:"description" validate:"notblank"`
	PetID       int64  `json:"petId" validate:"required"`
}

type visitResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	PetID       int64  `json:"petId"`
}

func listPetVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, err := pets.RefFromPath(r)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		items, err := svc.ListByPet(r.Context(), ref)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toVisitResponses(items))
	}
}

func listVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toVisitResponses(items))
	}
}

func getVisitHandler(svc *Service, nested bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, id, err := pathIDs(r, nested)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		v, err := svc.Get(r.Context(), ref, id)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toVisitResponse(v))
	}
}

func createPetVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, err := pets.RefFromPath(r)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		var req visitRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.Error(w, r, err)
			return
		}
		in, err := toInput(req)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		v, err := svc.Create(r.Context(), ref, in)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusCreated, toVisitResponse(v))
	}
}

func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req globalVisitRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.Error(w, r, err)
			return
		}
		in, err := toInput(visitRequest{Date: req.Date, Description: req.Description})
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		v, err := svc.Create(r.Context(), pets.Ref{PetID: req.PetID}, in)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusCreated, toVisitResponse(v))
	}
}

func updateVisitHandler(svc *Service, nested bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, id, err := pathIDs(r, nested)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		var req visitRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.Error(w, r, err)
			return
		}
		in, err := toInput(req)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		v, err := svc.Update(r.Context(), ref, id, in)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toVisitResponse(v))
	}
}

func deleteVisitHandler(svc *Service, nested bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, id, err := pathIDs(r, nested)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), ref, id); err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.NoContent(w, r)
	}
}

func pathIDs(r *http.Request, nested bool) (pets.Ref, int64, error) {
	var ref pets.Ref
	if nested {
		var err error
		if ref, err = pets.RefFromPath(r); err != nil {
			return pets.Ref{}, 0, err
		}
	}
	id, err := httpx.PathID(r, "visitId")
	if err != nil {
		return pets.Ref{}, 0, err
	}
	return ref, id, nil
}

func toInput(req visitRequest) (Input, error) {
	var d httpx.Dates
	date := d.Date("date", req.Date)
	if err := d.Err(); err != nil {
		return Input{}, err
	}
	return Input{Date: date, Description: req.Description}, nil
}

func toVisitResponse(v Visit) visitResponse {
	return visitResponse{
		ID:          v.ID,
		Date:        httpx.FormatDate(v.Date),
		Description: v.Description,
		PetID:       v.PetID,
	}
}

func toVisitResponses(items []Visit) []visitResponse {
	out := make([]visitResponse, 0, len(items))
	for _, v := range items {
		out = append(out, toVisitResponse(v))
	}
	return out
}
