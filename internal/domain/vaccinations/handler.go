package vaccinations

import (
	"net/http"

	"github.com/jeroenvanhattem/vethub/internal/domain/pets"
	"github.com/jeroenvanhattem/vethub/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	const nested = "/owners/{ownerId}/pets/{petId}/vaccinations"

	r.Get(nested, listPetVaccinationsHandler(svc))
	r.Post(nested, createVaccinationHandler(svc))
	r.Get(nested+"/{vaccinationId}", getVaccinationHandler(svc, true))
	r.Put(nested+"/{vaccinationId}", updateVaccinationHandler(svc))
	r.Delete(nested+"/{vaccinationId}", deleteVaccinationHandler(svc))

	// Solo lectura global
	r.Get("/vaccinations", listVaccinationsHandler(svc))
	r.Get("/vaccinations/{vaccinationId}", getVaccinationHandler(svc, false))
}

type vaccinationRequest struct {
	VaccineName     string  `json:"vaccineName" validate:"notblank"`
	VaccinationDate string  `json:"vaccinationDate" validate:"required"`
	NextDueDate     *string `json:"nextDueDate"`
}

type vaccinationResponse struct {
	ID              int64   `json:"id"`
	VaccineName     string  `json:"vaccineName"`
	VaccinationDate string  `json:"vaccinationDate"`
	NextDueDate     *string `json:"nextDueDate"`
	PetID           int64   `json:"petId"`
	PetName         string  `json:"petName"`
}

func listPetVaccinationsHandler(svc *Service) http.HandlerFunc {
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
		httpx.JSON(w, r, http.StatusOK, toResponses(items))
	}
}

func listVaccinationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toResponses(items))
	}
}

func getVaccinationHandler(svc *Service, nested bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ref pets.Ref
		if nested {
			var err error
			if ref, err = pets.RefFromPath(r); err != nil {
				httpx.Error(w, r, err)
				return
			}
		}
		id, err := httpx.PathID(r, "vaccinationId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		v, err := svc.Get(r.Context(), ref, id)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toResponse(v))
	}
}

func createVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, err := pets.RefFromPath(r)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		in, err := bindInput(r)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		v, err := svc.Create(r.Context(), ref, in)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusCreated, toResponse(v))
	}
}

func updateVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, err := pets.RefFromPath(r)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		id, err := httpx.PathID(r, "vaccinationId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		in, err := bindInput(r)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		v, err := svc.Update(r.Context(), ref, id, in)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toResponse(v))
	}
}

func deleteVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, err := pets.RefFromPath(r)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		id, err := httpx.PathID(r, "vaccinationId")
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

func bindInput(r *http.Request) (Input, error) {
	var req vaccinationRequest
	if err := httpx.Bind(r, &req); err != nil {
		return Input{}, err
	}

	var d httpx.Dates
	in := Input{
		VaccineName:     req.VaccineName,
		VaccinationDate: d.Date("vaccinationDate", req.VaccinationDate),
		NextDueDate:     d.OptionalDate("nextDueDate", req.NextDueDate),
	}
	if err := d.Err(); err != nil {
		return Input{}, err
	}
	return in, nil
}

func toResponse(v Vaccination) vaccinationResponse {
	return vaccinationResponse{
		ID:              v.ID,
		VaccineName:     v.VaccineName,
		VaccinationDate: httpx.FormatDate(v.VaccinationDate),
		NextDueDate:     httpx.FormatDatePtr(v.NextDueDate),
		PetID:           v.PetID,
		PetName:         v.PetName,
	}
}

func toResponses(items []Vaccination) []vaccinationResponse {
	out := make([]vaccinationResponse, 0, len(items))
	for _, v := range items {
		out = append(out, toResponse(v))
	}
	return out
}
