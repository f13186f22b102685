package api

import (
	"net/http"
	"time"

	"github.com/diamondjirapat/mango-reach-management-mockup/internal/api/respond"
)

// Root handles GET /
func Root(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Ads Reach Analyzer API is running",
	})
}

// HealthReporter exposes aggregated service health.
type HealthReporter interface {
	IsHealthy() bool
	Unhealthy() []string
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	health HealthReporter
}

func NewHealthHandler(h HealthReporter) *HealthHandler { return &HealthHandler{health: h} }

// CheckHealth handles GET /api/health
// 200 with status UP when every dependency is healthy, otherwise 503 with the failing ones.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "UP",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if h.health != nil && !h.health.IsHealthy() {
		response["status"] = "DOWN"
		response["down"] = h.health.Unhealthy()
		respond.JSON(w, r, http.StatusServiceUnavailable, response)
		return
	}
	respond.JSON(w, r, http.StatusOK, response)
}
