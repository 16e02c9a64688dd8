package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/application/usecase"
)

const serviceName = "nutrition-service"

// HealthHandler provides HTTP health check endpoints.
type HealthHandler struct {
	predict   *usecase.PredictDeficiency
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(predict *usecase.PredictDeficiency, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		predict:   predict,
		logger:    logger,
		startTime: time.Now(),
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

// ReadinessResponse is the JSON response for readiness checks.
type ReadinessResponse struct {
	Checks   map[string]string `json:"checks"`
	Status   string            `json:"status"`
	Service  string            `json:"service"`
	BundleID string            `json:"bundle_id,omitempty"`
	Variant  string            `json:"variant,omitempty"`
}

// RegisterRoutes registers health endpoints on the provided ServeMux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
}

// Healthz handles liveness checks.
func (h *HealthHandler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Uptime:  time.Since(h.startTime).String(),
	})
}

// Readyz reports whether a model is loaded. Without one the service stays
// up but answers 503.
func (h *HealthHandler) Readyz(w http.ResponseWriter, _ *http.Request) {
	engine := h.predict.Engine()
	if engine == nil {
		h.logger.Debug("not ready: no model loaded")
		writeJSON(w, http.StatusServiceUnavailable, ReadinessResponse{
			Status:  "not ready",
			Service: serviceName,
			Checks:  map[string]string{"model": "unavailable"},
		})
		return
	}

	writeJSON(w, http.StatusOK, ReadinessResponse{
		Status:   "ready",
		Service:  serviceName,
		Checks:   map[string]string{"model": "ok"},
		BundleID: engine.Bundle().ID().String(),
		Variant:  engine.Variant().String(),
	})
}
