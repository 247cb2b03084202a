package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jeroenvanhattem/vethub/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog deja en el ctx un logger con request_id y loguea una línea por request.
// Tiene que ir después de RequestID.
func AccessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			l := log.With(slog.String("request_id", chimw.GetReqID(r.Context())))

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context(), l)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			l.Log(r.Context(), level, "request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
