package handler

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/fabrica/realestate-crm/internal/core/ports"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// Verifies the record store can serve the settings collection and that the
// upload tree is reachable before declaring the service ready.
type ReadinessHandler struct {
	settings  ports.SettingsRepository
	uploadDir string
}

func NewReadinessHandler(settings ports.SettingsRepository, uploadDir string) *ReadinessHandler {
	return &ReadinessHandler{settings: settings, uploadDir: uploadDir}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	deps := make(map[string]dependencyStatus)
	healthy := true

	// --- Record store: settings must load and parse ---
	if _, err := h.settings.Get(c.Request().Context()); err != nil {
		deps["store"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["store"] = dependencyStatus{Status: "ok"}
	}

	// --- Upload directory reachable ---
	if info, err := os.Stat(h.uploadDir); err != nil || !info.IsDir() {
		deps["uploads"] = dependencyStatus{Status: "unhealthy", Error: "upload directory unavailable"}
		healthy = false
	} else {
		deps["uploads"] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
