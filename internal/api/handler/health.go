package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles the GET /health liveness probe.
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

// StoreChecker reports whether the in-memory store is ready to serve.
type StoreChecker interface {
	Seeded() bool
}

// ReadinessHandler handles the GET /health/ready readiness probe. The only
// dependency is the in-process store, so readiness means the seed ran.
type ReadinessHandler struct {
	store StoreChecker
}

func NewReadinessHandler(store StoreChecker) *ReadinessHandler {
	return &ReadinessHandler{store: store}
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

	status := "ok"
	httpStatus := http.StatusOK
	if h.store.Seeded() {
		deps["catalog"] = dependencyStatus{Status: "ok"}
	} else {
		deps["catalog"] = dependencyStatus{Status: "unhealthy", Error: "catalog not seeded"}
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
