package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/workbridge/client/internal/core/domain"
)

func sampleJobs() []domain.Job {
	return []domain.Job{
		{ID: 1, Title: "Build an API", Description: "REST service in Go", Budget: decimal.NewFromInt(500), Applications: 3},
		{ID: 2, Title: "Fix CSS", Description: strings.Repeat("a", 200), Budget: decimal.NewFromInt(50), Category: "Design"},
	}
}

func TestJobHandler_Freelancer(t *testing.T) {
	e := newEcho()
	h := NewJobHandler(&stubJobService{jobs: sampleJobs()})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/freelancer", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Freelancer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	for _, want := range []string{"Build an API", "$500", "General", "Design", "/jobs/2/apply", strings.Repeat("a", 150) + "..."} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body", want)
		}
	}
}

func TestJobHandler_Recruiter_ShowsCounts(t *testing.T) {
	e := newEcho()
	h := NewJobHandler(&stubJobService{jobs: sampleJobs()})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/recruiter", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Recruiter(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "3 Applications") {
		t.Fatalf("expected application count in body")
	}
}

func TestJobHandler_ListError(t *testing.T) {
	e := newEcho()
	h := NewJobHandler(&stubJobService{listErr: domain.ErrNotAuthenticated})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/freelancer", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.Freelancer(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error loading jobs") {
		t.Fatalf("expected error alert")
	}
}

func TestJobHandler_Apply(t *testing.T) {
	e := newEcho()
	var got domain.ApplicationInput
	h := NewJobHandler(&stubJobService{
		jobs: sampleJobs(),
		applyFn: func(in domain.ApplicationInput) (*domain.Application, error) {
			got = in
			return &domain.Application{ID: 9, JobID: in.JobID}, nil
		},
	})

	req := formRequest("/jobs/1/apply", url.Values{"proposal": {"I can do it"}, "bid_amount": {"450.50"}})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard/freelancer?notice=applied" {
		t.Fatalf("unexpected redirect: %s", loc)
	}
	if got.JobID != 1 || got.Proposal != "I can do it" || !got.BidAmount.Equal(decimal.RequireFromString("450.5")) {
		t.Fatalf("unexpected application: %+v", got)
	}
}

func TestJobHandler_Apply_ServiceError(t *testing.T) {
	e := newEcho()
	h := NewJobHandler(&stubJobService{
		jobs: sampleJobs(),
		applyFn: func(in domain.ApplicationInput) (*domain.Application, error) {
			return nil, domain.ErrInvalidApplication
		},
	})

	req := formRequest("/jobs/1/apply", url.Values{"proposal": {""}, "bid_amount": {"0"}})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	_ = h.Apply(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error: "+domain.ErrInvalidApplication.Error()) {
		t.Fatalf("expected raw error alert, got %s", rec.Body.String())
	}
}

func TestJobHandler_Apply_BadID(t *testing.T) {
	e := newEcho()
	h := NewJobHandler(&stubJobService{})

	req := formRequest("/jobs/abc/apply", url.Values{})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Apply(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func TestJobHandler_Applications(t *testing.T) {
	e := newEcho()
	h := NewJobHandler(&stubJobService{apps: []domain.Application{
		{ID: 1, JobID: 4, Proposal: "hire me", BidAmount: decimal.NewFromInt(30), Status: "pending"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/applications", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Applications(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "#4") || !strings.Contains(body, "pending") {
		t.Fatalf("unexpected body: %s", body)
	}
}
