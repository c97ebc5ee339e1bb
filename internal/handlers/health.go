package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/storage"
	"github.com/felpschneider/TripSync/internal/utils"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	store     storage.Store
	startedAt time.Time
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(store storage.Store) *HealthHandler {
	return &HealthHandler{store: store, startedAt: time.Now()}
}

// Healthz reports process liveness
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Alive"
// @Router /healthz [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// Readyz reports whether the service can reach its database
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Ready"
// @Failure 503 {object} dto.HealthResponse "Database unreachable"
// @Router /readyz [get]
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{"database": "ok"}
	status := http.StatusOK
	resp := dto.HealthResponse{Status: "ok"}

	if err := h.store.Ping(ctx); err != nil {
		checks["database"] = err.Error()
		resp.Status = "unavailable"
		status = http.StatusServiceUnavailable
	}
	resp.Checks = checks

	utils.WriteJSONResponse(w, status, resp)
}
