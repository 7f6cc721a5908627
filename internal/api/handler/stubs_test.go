package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/workbridge/client/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in domain.RegisterInput) (*domain.Account, error)
	loginFn    func(ctx context.Context, creds domain.Credentials) (*domain.Account, error)
	loggedOut  bool
}

func (s *stubAuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.Account, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.Account, error) {
	return s.loginFn(ctx, creds)
}

func (s *stubAuthService) Logout(context.Context) error {
	s.loggedOut = true
	return nil
}

func (s *stubAuthService) IsAuthenticated(context.Context) bool { return false }

func (s *stubAuthService) Token(context.Context) (string, error) {
	return "", domain.ErrNotAuthenticated
}

func (s *stubAuthService) CurrentUser(context.Context) (*domain.Account, error) {
	return nil, domain.ErrNotAuthenticated
}

type stubProfileService struct {
	profiles map[string]domain.Profile
	err      error
}

func (s *stubProfileService) Get(_ context.Context, id string) (domain.Profile, error) {
	return s.profiles[id], nil
}

func (s *stubProfileService) Update(_ context.Context, id string, p domain.Profile) error {
	if s.err != nil {
		return s.err
	}
	s.profiles[id] = p
	return nil
}

func (s *stubProfileService) Current(context.Context) (*domain.Account, domain.Profile, error) {
	return nil, domain.Profile{}, domain.ErrNotAuthenticated
}

type stubJobService struct {
	jobs    []domain.Job
	apps    []domain.Application
	listErr error
	applyFn func(in domain.ApplicationInput) (*domain.Application, error)
}

func (s *stubJobService) ListJobs(context.Context) ([]domain.Job, error) {
	return s.jobs, s.listErr
}

func (s *stubJobService) Apply(_ context.Context, in domain.ApplicationInput) (*domain.Application, error) {
	return s.applyFn(in)
}

func (s *stubJobService) MyApplications(context.Context) ([]domain.Application, error) {
	return s.apps, s.listErr
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = NewRenderer()
	e.Validator = NewValidator()
	return e
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}
