package http

import (
	"net/http"

	"github.com/atinyakov/nexus/internal/models"
)

// DashboardService defines the simulation operations used by DashboardHandler.
type DashboardService interface {
	Status() []models.LiveTransitStatus
	Stats() models.CityStats
}

// DashboardHandler serves the simulated city data.
type DashboardHandler struct {
	Dashboard DashboardService
}

// Status handles GET /api/status.
func (h *DashboardHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Dashboard.Status())
}

// Stats handles GET /api/stats. Every call advances the commuter counter.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Dashboard.Stats())
}

// Ping handles GET /api/ping.
func Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Server is alive!"})
}
