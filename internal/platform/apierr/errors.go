// Package apierr define la taxonomía de errores que viaja desde los services
// hasta la capa HTTP: NotFound (404) y Validation (400). Todo lo demás es 500.
package apierr

import (
	"errors"
	"fmt"
	"strings"
)

// Code es un código de error estable + su motivo legible.
type Code struct {
	Code   string
	Reason string
}

var (
	InternalServerError = Code{"ERR-0001", "Uncaught Exception: You think I know what went wrong here? If I did, I would've caught this exception no?"}
	OwnerNotFound       = Code{"ERR-0002", "The requested owner does not exist."}
	PetNotFound         = Code{"ERR-0003", "The requested pet does not exist."}
	PetTypeNotFound     = Code{"ERR-0004", "The requested pet type does not exist."}
	VetNotFound         = Code{"ERR-0005", "The requested vet does not exist."}
	SpecialtyNotFound   = Code{"ERR-0006", "The requested specialty does not exist."}
	VisitNotFound       = Code{"ERR-0007", "The requested visit does not exist."}
	VaccinationNotFound = Code{"ERR-0008", "The requested vaccination does not exist."}
	AppointmentNotFound = Code{"ERR-0009", "The requested appointment does not exist."}
	InvalidRequest      = Code{"ERR-0010", "The request contains invalid data."}
)

// NotFoundError indica que un recurso (o uno de sus padres) no existe.
type NotFoundError struct {
	Code Code
}

func (e *NotFoundError) Error() string { return e.Code.Reason }

// NotFound construye el error del recurso indicado.
func NotFound(c Code) error {
	return &NotFoundError{Code: c}
}

// Violation es una regla incumplida sobre un campo del request.
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError agrupa todas las violaciones de un mismo request.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Code))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Invalid construye un ValidationError. Sin violaciones devuelve nil,
// así el caller puede hacer `return apierr.Invalid(vs...)` directamente.
func Invalid(vs ...Violation) error {
	if len(vs) == 0 {
		return nil
	}
	return &ValidationError{Violations: vs}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
