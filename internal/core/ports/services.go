package ports

import (
	"context"

	"github.com/workbridge/client/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, in domain.RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, creds domain.Credentials) (*domain.Account, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	Token(ctx context.Context) (string, error)
	CurrentUser(ctx context.Context) (*domain.Account, error)
}

type ProfileService interface {
	Get(ctx context.Context, accountID string) (domain.Profile, error)
	Update(ctx context.Context, accountID string, profile domain.Profile) error
	// Current returns the session user together with their profile.
	Current(ctx context.Context) (*domain.Account, domain.Profile, error)
}

type JobService interface {
	ListJobs(ctx context.Context) ([]domain.Job, error)
	Apply(ctx context.Context, in domain.ApplicationInput) (*domain.Application, error)
	MyApplications(ctx context.Context) ([]domain.Application, error)
}
