package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/workbridge/client/internal/core/domain"
	"github.com/workbridge/client/internal/core/ports"
	"github.com/workbridge/client/internal/metrics"
)

const (
	modeRemote   = "remote"
	modeFallback = "fallback"
)

// AuthService registers and logs in users against the backend, falling back to
// the local account store whenever the backend call fails for any reason.
type AuthService struct {
	remote   ports.RemoteAPI
	accounts ports.AccountStore
	sessions ports.SessionStore
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(remote ports.RemoteAPI, accounts ports.AccountStore, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{
		remote:   remote,
		accounts: accounts,
		sessions: sessions,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Register creates an account remotely, or locally if the backend is
// unreachable or rejects the request. Either way the new account becomes the
// current session. Input checks belong to the front ends; only local storage
// errors make it fail.
func (s *AuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.Account, error) {
	account, err := s.remote.Register(ctx, in)
	if err == nil {
		if err := s.startSession(ctx, *account, ""); err != nil {
			return nil, err
		}
		metrics.AuthAttemptsTotal.WithLabelValues("register", modeRemote, "success").Inc()
		s.log.Info().Str("username", account.Username).Msg("registered with remote api")
		return account, nil
	}
	s.log.Info().Err(err).Msg("api unavailable, registering in fallback mode")

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	local := domain.Account{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.Username,
		IsFreelancer: in.IsFreelancer,
		IsClient:     in.IsClient,
		CreatedAt:    s.now(),
	}

	if err := s.startSession(ctx, local, ""); err != nil {
		return nil, err
	}
	if err := s.accounts.AppendAccount(ctx, local); err != nil {
		return nil, fmt.Errorf("store account: %w", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", modeFallback, "success").Inc()
	s.log.Info().Str("username", local.Username).Str("account_id", local.ID).Msg("registered in fallback mode")

	snapshot := local.Snapshot()
	return &snapshot, nil
}

// Login authenticates remotely, or against the local accounts when the backend
// call fails. The local lookup accepts either username or email.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.Account, error) {
	res, err := s.remote.Login(ctx, creds)
	if err == nil {
		if err := s.startSession(ctx, res.Account, res.AccessToken); err != nil {
			return nil, err
		}
		metrics.AuthAttemptsTotal.WithLabelValues("login", modeRemote, "success").Inc()
		s.log.Info().Str("username", res.Account.Username).Msg("logged in with remote api")
		account := res.Account.Snapshot()
		return &account, nil
	}
	s.log.Info().Err(err).Msg("api unavailable, logging in with fallback mode")

	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	for _, acc := range accounts {
		if !acc.Matches(creds.Username) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(creds.Password)) != nil {
			continue
		}
		if err := s.startSession(ctx, acc, ""); err != nil {
			return nil, err
		}
		metrics.AuthAttemptsTotal.WithLabelValues("login", modeFallback, "success").Inc()
		s.log.Info().Str("username", acc.Username).Str("account_id", acc.ID).Msg("logged in with fallback mode")
		snapshot := acc.Snapshot()
		return &snapshot, nil
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", modeFallback, "failure").Inc()
	return nil, domain.ErrInvalidCredentials
}

// Logout forgets the current session.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a token is stored. Store errors count as no.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	_, ok, err := s.sessions.Token(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("read session token")
		return false
	}
	return ok
}

func (s *AuthService) Token(ctx context.Context) (string, error) {
	token, ok, err := s.sessions.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}
	if !ok {
		return "", domain.ErrNotAuthenticated
	}
	return token, nil
}

func (s *AuthService) CurrentUser(ctx context.Context) (*domain.Account, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return &session.User, nil
}

// startSession stores account as the current user. An empty token is replaced
// by a random one.
func (s *AuthService) startSession(ctx context.Context, account domain.Account, token string) error {
	if token == "" {
		token = newToken()
	}
	if err := s.sessions.Save(ctx, domain.Session{User: account.Snapshot(), Token: token}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// newToken returns a random opaque session token. It is not a credential.
func newToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
