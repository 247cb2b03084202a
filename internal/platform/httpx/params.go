package httpx

import (
	"net/http"
	"strconv"

	"github.com/jeroenvanhattem/vethub/internal/platform/apierr"

	"github.com/go-chi/chi/v5"
)

// PathID parsea un id numérico positivo del path.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apierr.Invalid(apierr.NewViolation(name, apierr.RuleInvalidFormat))
	}
	return id, nil
}

// PathIDs parsea varios ids en orden; corta en el primero inválido.
func PathIDs(r *http.Request, names ...string) ([]int64, error) {
	out := make([]int64, 0, len(names))
	for _, n := range names {
		id, err := PathID(r, n)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
