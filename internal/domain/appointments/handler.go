package appointments

import (
	"context"
	"net/http"

	"github.com/jeroenvanhattem/vethub/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/appointments", listAppointmentsHandler(svc))
	r.Post("/appointments", createAppointmentHandler(svc))
	r.Get("/appointments/{appointmentId}", getAppointmentHandler(svc))
	r.Put("/appointments/{appointmentId}", updateAppointmentHandler(svc))
	r.Patch("/appointments/{appointmentId}/cancel", statusHandler(svc.Cancel))
	r.Patch("/appointments/{appointmentId}/complete", statusHandler(svc.Complete))
	r.Delete("/appointments/{appointmentId}", deleteAppointmentHandler(svc))

	r.Get("/pets/{petId}/appointments", listByParentHandler("petId", svc.ListByPet))
	r.Get("/vets/{vetId}/appointments", listByParentHandler("vetId", svc.ListByVet))
}

type createAppointmentRequest struct {
	ScheduledDateTime string `json:"scheduledDateTime" validate:"required"`
	Reason            string `json:"reason" validate:"notblank"`
	Status            string `json:"status" validate:"omitempty,oneof=SCHEDULED CONFIRMED CANCELLED COMPLETED"`
	PetID             int64  `json:"petId" validate:"required"`
	VetID             int64  `json:"vetId" validate:"required"`
}

type updateAppointmentRequest struct {
	ScheduledDateTime string `json:"scheduledDateTime" validate:"required"`
	Reason            string `json:"reason" validate:"notblank"`
	Status            string `json:"status" validate:"required,oneof=SCHEDULED CONFIRMED CANCELLED COMPLETED"`
}

type appointmentResponse struct {
	ID                int64  `json:"id"`
	ScheduledDateTime string `json:"scheduledDateTime"`
	Reason            string `json:"reason"`
	Status            Status `json:"status"`
	PetID             int64  `json:"petId"`
	PetName           string `json:"petName"`
	VetID             int64  `json:"vetId"`
	VetFirstName      string `json:"vetFirstName"`
	VetLastName       string `json:"vetLastName"`
}

func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toResponses(items))
	}
}

func listByParentHandler(param string, list func(ctx context.Context, id int64) ([]Appointment, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, param)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		items, err := list(r.Context(), id)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toResponses(items))
	}
}

func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "appointmentId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toResponse(a))
	}
}

func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAppointmentRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.Error(w, r, err)
			return
		}

		var d httpx.Dates
		at := d.DateTime("scheduledDateTime", req.ScheduledDateTime)
		if err := d.Err(); err != nil {
			httpx.Error(w, r, err)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			ScheduledAt: at,
			Reason:      req.Reason,
			Status:      Status(req.Status),
			PetID:       req.PetID,
			VetID:       req.VetID,
		})
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusCreated, toResponse(a))
	}
}

func updateAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "appointmentId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		var req updateAppointmentRequest
		if err := httpx.Bind(r, &req); err != nil {
			httpx.Error(w, r, err)
			return
		}

		var d httpx.Dates
		at := d.DateTime("scheduledDateTime", req.ScheduledDateTime)
		if err := d.Err(); err != nil {
			httpx.Error(w, r, err)
			return
		}

		a, err := svc.Update(r.Context(), id, UpdateInput{
			ScheduledAt: at,
			Reason:      req.Reason,
			Status:      Status(req.Status),
		})
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toResponse(a))
	}
}

// statusHandler sirve /cancel y /complete: sin body, solo cambia el estado.
func statusHandler(change func(ctx context.Context, id int64) (Appointment, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "appointmentId")
		if err != nil {
			httpx.Error(w, r, err)
			return
		}

		a, err := change(r.Context(), id)
		if err != nil {
			httpx.Error(w, r, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toResponse(a))
	}
}

func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "appointmentId")
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

func toResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:                a.ID,
		ScheduledDateTime: httpx.FormatDateTime(a.ScheduledAt),
		Reason:            a.Reason,
		Status:            a.Status,
		PetID:             a.PetID,
		PetName:           a.PetName,
		VetID:             a.VetID,
		VetFirstName:      a.VetFirstName,
		VetLastName:       a.VetLastName,
	}
}

func toResponses(items []Appointment) []appointmentResponse {
	out := make([]appointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toResponse(a))
	}
	return out
}
