// Package httpx junta los helpers HTTP que comparten todos los módulos:
// render de JSON, decode de bodies, ids de path, validación y body de error.
package httpx

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/jeroenvanhattem/vethub/internal/platform/apierr"
	"github.com/jeroenvanhattem/vethub/internal/platform/validation"

	"github.com/go-chi/render"
)

// maxBodyBytes acota el body de cualquier request JSON.
const maxBodyBytes = 1 << 20

var ErrEmptyBody = errors.New("request body is empty")

// BodyMissing es la violación para un body ausente o "null".
var BodyMissing = apierr.Violation{
	Field:   "body",
	Code:    "BODY_IS_MISSING",
	Message: "Request body is missing",
}

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func NoContent(w http.ResponseWriter, r *http.Request) {
	render.NoContent(w, r)
}

// DecodeJSON lee el body en dst. Body vacío o literal null devuelve ErrEmptyBody;
// JSON mal formado devuelve un ValidationError sobre "body".
func DecodeJSON(r *http.Request, dst any) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return apierr.Invalid(apierr.NewViolation("body", apierr.RuleIsInvalid))
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ErrEmptyBody
	}
	if err := render.DecodeJSON(bytes.NewReader(raw), dst); err != nil {
		return apierr.Invalid(apierr.NewViolation("body", apierr.RuleIsInvalid))
	}
	return nil
}

// Bind decodifica y valida los tags `validate` del request.
func Bind(r *http.Request, dst any) error {
	if err := DecodeJSON(r, dst); err != nil {
		if errors.Is(err, ErrEmptyBody) {
			return apierr.Invalid(BodyMissing)
		}
		return err
	}
	return validation.Struct(dst)
}
