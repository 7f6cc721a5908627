package ports

import (
	"context"

	"github.com/workbridge/client/internal/core/domain"
)

// LoginResult is what a successful remote login yields.
// AccessToken may be empty if the backend did not issue one.
type LoginResult struct {
	Account      domain.Account
	AccessToken  string
	RefreshToken string
}

// RemoteAPI is the marketplace backend's REST surface.
type RemoteAPI interface {
	Register(ctx context.Context, in domain.RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, creds domain.Credentials) (*LoginResult, error)
	ListJobs(ctx context.Context, token string) ([]domain.Job, error)
	Apply(ctx context.Context, token string, in domain.ApplicationInput) (*domain.Application, error)
	MyApplications(ctx context.Context, token string) ([]domain.Application, error)
	Ping(ctx context.Context) error
}
