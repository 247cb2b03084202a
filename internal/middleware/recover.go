package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/jeroenvanhattem/vethub/internal/platform/httpx"
	"github.com/jeroenvanhattem/vethub/internal/platform/logger"
)

// Recover convierte un panic en el 500 estándar (ERR-0001) y lo loguea con stack.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromContext(r.Context()).Error("panic recovered",
				"panic", rvr,
				"stack", string(debug.Stack()),
			)
			httpx.Internal(w, r)
		}()

		next.ServeHTTP(w, r)
	})
}
