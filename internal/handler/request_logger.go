package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/folio/backend/internal/clientinfo"
)

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController (Go 1.20+).
func (sr *statusRecorder) Unwrap() http.ResponseWriter { return sr.ResponseWriter }

// RequestLogger is middleware that logs each HTTP request. The client field
// carries the proxy-resolved address, which is what the rate limiter and
// geolocation see.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(sr, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sr.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"client", clientinfo.ClientAddress(r),
		)
	})
}
