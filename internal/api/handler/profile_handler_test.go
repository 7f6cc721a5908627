package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/workbridge/client/internal/api/middleware"
	"github.com/workbridge/client/internal/core/domain"
)

func TestProfileHandler_Show(t *testing.T) {
	e := newEcho()
	stub := &stubProfileService{profiles: map[string]domain.Profile{
		"42": {Title: "Gopher", Bio: "Builds things", HourlyRate: decimal.RequireFromString("55.5"), Skills: "Go, SQL"},
	}}
	h := NewProfileHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextAccount, &domain.Account{ID: "42", Username: "alice"})

	if err := h.Show(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	for _, want := range []string{"@alice", "Gopher", "$55.5/hr", "Go, SQL"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body", want)
		}
	}
	if strings.Contains(body, "profileForm") {
		t.Fatalf("edit form should be hidden without ?edit")
	}
}

func TestProfileHandler_Show_EmptyProfile(t *testing.T) {
	e := newEcho()
	h := NewProfileHandler(&stubProfileService{profiles: map[string]domain.Profile{}})

	req := httptest.NewRequest(http.MethodGet, "/profile?edit=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextAccount, &domain.Account{ID: "7", Username: "bob"})

	if err := h.Show(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Not set - Click Edit to add") {
		t.Fatalf("expected placeholder for empty fields")
	}
	if !strings.Contains(body, "profileForm") {
		t.Fatalf("expected edit form with ?edit")
	}
}

func TestProfileHandler_Update(t *testing.T) {
	e := newEcho()
	stub := &stubProfileService{profiles: map[string]domain.Profile{}}
	h := NewProfileHandler(stub)

	req := formRequest("/profile", url.Values{
		"title":       {" Backend Developer "},
		"bio":         {"Ten years of Go"},
		"hourly_rate": {"80"},
		"skills":      {"Go, Kubernetes"},
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextAccount, &domain.Account{ID: "42"})

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loc := rec.Header().Get("Location"); loc != "/profile?notice=profile-updated" {
		t.Fatalf("unexpected redirect: %s", loc)
	}

	got := stub.profiles["42"]
	if got.Title != "Backend Developer" || got.Skills != "Go, Kubernetes" || !got.HourlyRate.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("unexpected stored profile: %+v", got)
	}
}

func TestProfileHandler_Update_BadRate(t *testing.T) {
	e := newEcho()
	stub := &stubProfileService{profiles: map[string]domain.Profile{}}
	h := NewProfileHandler(stub)

	req := formRequest("/profile", url.Values{"hourly_rate": {"lots"}})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextAccount, &domain.Account{ID: "42"})

	_ = h.Update(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if _, saved := stub.profiles["42"]; saved {
		t.Fatalf("profile should not be saved")
	}
}

func TestProfileHandler_Update_ServiceError(t *testing.T) {
	e := newEcho()
	stub := &stubProfileService{profiles: map[string]domain.Profile{}, err: errors.New("disk full")}
	h := NewProfileHandler(stub)

	req := formRequest("/profile", url.Values{"title": {"x"}})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextAccount, &domain.Account{ID: "42"})

	_ = h.Update(c)

	if !strings.Contains(rec.Body.String(), "Error updating profile: disk full") {
		t.Fatalf("expected error alert, got %s", rec.Body.String())
	}
}
