package ports

import (
	"context"

	"github.com/workbridge/client/internal/core/domain"
)

// AccountStore persists accounts registered in fallback mode.
type AccountStore interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	AppendAccount(ctx context.Context, account domain.Account) error
}

// ProfileStore persists profiles keyed by account id.
type ProfileStore interface {
	// GetProfile returns the stored profile and true, or the zero profile and false.
	GetProfile(ctx context.Context, accountID string) (domain.Profile, bool, error)
	SaveProfile(ctx context.Context, accountID string, profile domain.Profile) error
}

// SessionStore persists the current session between invocations.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	// Load returns nil without error when nobody is logged in.
	Load(ctx context.Context) (*domain.Session, error)
	Token(ctx context.Context) (string, bool, error)
	Clear(ctx context.Context) error
}
