package handler

import (
	"log/slog"
	"net/http"
)

// Recovery converts panics in downstream handlers into a generic 500 JSON
// response. Internal detail is logged server-side only; a single request's
// failure must never take down the server.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
				)
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "An error occurred"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
