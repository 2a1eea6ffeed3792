package handler

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/folio/backend/internal/clientinfo"
)

// SecurityHeaders adds security response headers (CSP, X-Frame-Options, etc.)
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-XSS-Protection", "0")
		next.ServeHTTP(w, r)
	})
}

// RateLimiter provides per-client rate limiting using a sliding window,
// keyed by the resolved client address (proxy headers respected). It blunts
// abuse of the submission endpoint.
type RateLimiter struct {
	max    int
	window time.Duration

	mu      sync.Mutex
	clients map[string]*clientWindow
}

type clientWindow struct {
	timestamps []time.Time
}

// NewRateLimiter creates a rate limiter allowing max requests per client
// address per window.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		max:     max,
		window:  window,
		clients: make(map[string]*clientWindow),
	}
	go rl.cleanupLoop()
	return rl
}

// cleanupLoop periodically removes stale entries from the clients map.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		windowStart := time.Now().Add(-rl.window)
		rl.mu.Lock()
		for addr, cw := range rl.clients {
			valid := cw.timestamps[:0]
			for _, ts := range cw.timestamps {
				if ts.After(windowStart) {
					valid = append(valid, ts)
				}
			}
			cw.timestamps = valid
			if len(cw.timestamps) == 0 {
				delete(rl.clients, addr)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware returns an http.Handler that enforces the limit, answering
// 429 with a Retry-After header once a client exhausts its window.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr := clientinfo.ClientAddress(r)
		now := time.Now()
		windowStart := now.Add(-rl.window)

		rl.mu.Lock()
		cw, ok := rl.clients[addr]
		if !ok {
			cw = &clientWindow{}
			rl.clients[addr] = cw
		}

		// Prune timestamps outside the window; in-place filter on shared
		// backing array.
		valid := cw.timestamps[:0]
		for _, ts := range cw.timestamps {
			if ts.After(windowStart) {
				valid = append(valid, ts)
			}
		}
		cw.timestamps = valid

		if len(cw.timestamps) >= rl.max {
			oldest := cw.timestamps[0]
			retryAfter := oldest.Add(rl.window).Sub(now)
			rl.mu.Unlock()

			w.Header().Set("Retry-After", retryAfterSeconds(retryAfter))
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
			return
		}

		cw.timestamps = append(cw.timestamps, now)
		rl.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(d.Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
