package handler

import (
	"encoding/json"
	"net/http"
)

// Handler carries cross-cutting HTTP concerns (CORS) shared by all routes.
type Handler struct {
	allowedOrigin string
}

// New creates a Handler. allowedOrigin is the CORS Access-Control-Allow-Origin
// value; the contact form is served from arbitrary static frontends, so this
// is usually the wildcard.
func New(allowedOrigin string) *Handler {
	return &Handler{allowedOrigin: allowedOrigin}
}

// CORS is middleware that sets CORS headers on API routes and answers
// OPTIONS preflight requests with an empty 204.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
