package handlers

import (
	"net/http"

	"github.com/oceanofgigs/engine/internal/repository"
)

type statsSource interface {
	Stats() repository.Stats
}

type HealthHandler struct {
	store statsSource
}

func NewHealthHandler(store statsSource) *HealthHandler { return &HealthHandler{store: store} }

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness reports ready once the skill catalog has been seeded.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	stats := h.store.Stats()
	if stats.Skills == 0 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "seeding", "counts": stats})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ready", "counts": stats})
}
