package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is anything whose reachability the readiness probe reports.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles GET /health (liveness probe).
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles GET /health/ready (readiness probe).
// The local store is required; the remote API is reported but only degrades
// the status, since the client keeps working in fallback mode without it.
type HealthDependenciesHandler struct {
	store  Pinger
	remote Pinger
}

func NewHealthDependenciesHandler(store, remote Pinger) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		store:  store,
		remote: remote,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	status := "ok"
	httpStatus := http.StatusOK

	if err := h.store.Ping(ctx); err != nil {
		deps["store"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		status = "unavailable"
		httpStatus = http.StatusServiceUnavailable
	} else {
		deps["store"] = dependencyStatus{Status: "ok"}
	}

	if err := h.remote.Ping(ctx); err != nil {
		deps["api"] = dependencyStatus{Status: "unreachable", Error: err.Error()}
		if status == "ok" {
			status = "fallback"
		}
	} else {
		deps["api"] = dependencyStatus{Status: "ok"}
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
