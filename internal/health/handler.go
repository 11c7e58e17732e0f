// SoleStyle | 2026
// handler.go

package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/solestyle/api/internal/core"
)

// Checker is satisfied by the database and redis wrappers.
type Checker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db    Checker
	redis Checker
}

func NewHandler(db, redis Checker) *Handler {
	return &Handler{db: db, redis: redis}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Liveness)
	r.Get("/readyz", h.Readiness)
}

// RegisterAPIRoutes mounts the public status endpoint under the API
// prefix alongside the storefront routes.
func (h *Handler) RegisterAPIRoutes(r chi.Router) {
	r.Get("/health", h.Status)
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	core.OK(w, map[string]string{
		"status":  "OK",
		"message": "SoleStyle API is running",
	})
}

func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	core.OK(w, map[string]string{"status": "alive"})
}

// Readiness pings the backing stores concurrently and reports 503 when
// any of them is unreachable.
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]Checker{
		"database": h.db,
		"redis":    h.redis,
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	statuses := make(map[string]string, len(checks))
	ready := true

	for name, checker := range checks {
		wg.Add(1)
		go func(name string, checker Checker) {
			defer wg.Done()

			status := "ok"
			if err := checker.Ping(ctx); err != nil {
				status = "unavailable"
			}

			mu.Lock()
			statuses[name] = status
			if status != "ok" {
				ready = false
			}
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	status := http.StatusOK
	state := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		state = "not ready"
	}

	core.WriteJSON(w, status, map[string]any{
		"status": state,
		"checks": statuses,
	})
}
