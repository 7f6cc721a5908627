package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func ok(context.Context) error { return nil }

func TestReadiness(t *testing.T) {
	down := func(context.Context) error { return errors.New("connection refused") }

	cases := []struct {
		name       string
		store      pingerFunc
		remote     pingerFunc
		wantCode   int
		wantStatus string
	}{
		{"all up", ok, ok, http.StatusOK, "ok"},
		{"api down", ok, down, http.StatusOK, "fallback"},
		{"store down", down, ok, http.StatusServiceUnavailable, "unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			h := NewHealthDependenciesHandler(tc.store, tc.remote)

			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := h.Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}

			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Status != tc.wantStatus {
				t.Fatalf("expected status %s, got %s", tc.wantStatus, resp.Status)
			}
		})
	}
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
