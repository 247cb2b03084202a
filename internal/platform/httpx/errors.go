package httpx

import (
	"errors"
	"net/http"

	"github.com/jeroenvanhattem/vethub/internal/platform/apierr"
	"github.com/jeroenvanhattem/vethub/internal/platform/logger"
	"github.com/jeroenvanhattem/vethub/internal/platform/metrics"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ErrorBody es el cuerpo de todas las respuestas de error.
type ErrorBody struct {
	ErrorCode    string             `json:"errorCode"`
	ErrorMessage string             `json:"errorMessage"`
	Method       string             `json:"method"`
	URI          string             `json:"uri"`
	Query        string             `json:"query,omitempty"`
	StatusCode   int                `json:"statusCode"`
	RequestID    string             `json:"requestId,omitempty"`
	Errors       []apierr.Violation `json:"errors,omitempty"`
}

// Error traduce err al status y body correspondientes.
// NotFound → 404, Validation → 400, cualquier otro → 500 con mensaje fijo.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var (
		nf *apierr.NotFoundError
		ve *apierr.ValidationError
	)

	switch {
	case errors.As(err, &nf):
		writeError(w, r, http.StatusNotFound, nf.Code, nil)
	case errors.As(err, &ve):
		writeError(w, r, http.StatusBadRequest, apierr.InvalidRequest, ve.Violations)
	default:
		logger.FromContext(r.Context()).Error("unhandled error",
			logger.Err(err),
			"method", r.Method,
			"uri", r.URL.Path,
		)
		Internal(w, r)
	}
}

// Internal escribe el 500 genérico (también lo usa el recover de panics).
func Internal(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusInternalServerError, apierr.InternalServerError, nil)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code apierr.Code, vs []apierr.Violation) {
	metrics.ObserveError(code.Code)
	JSON(w, r, status, ErrorBody{
		ErrorCode:    code.Code,
		ErrorMessage: code.Reason,
		Method:       r.Method,
		URI:          r.URL.Path,
		Query:        r.URL.RawQuery,
		StatusCode:   status,
		RequestID:    chimw.GetReqID(r.Context()),
		Errors:       vs,
	})
}
