package local

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/workbridge/client/internal/core/domain"
	"github.com/workbridge/client/internal/core/ports"
)

// SessionStore keeps the current account under "user" and the token under
// "token", as two independent keys.
type SessionStore struct {
	kv ports.KVStore
}

func NewSessionStore(kv ports.KVStore) *SessionStore {
	return &SessionStore{kv: kv}
}

func (s *SessionStore) Save(ctx context.Context, session domain.Session) error {
	raw, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.kv.Set(ctx, KeyUser, string(raw)); err != nil {
		return fmt.Errorf("write user: %w", err)
	}
	if err := s.kv.Set(ctx, KeyToken, session.Token); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Load returns nil when no user snapshot is stored.
func (s *SessionStore) Load(ctx context.Context) (*domain.Session, error) {
	raw, ok, err := s.kv.Get(ctx, KeyUser)
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session.User); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	token, _, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}
	session.Token = token
	return &session, nil
}

func (s *SessionStore) Token(ctx context.Context) (string, bool, error) {
	token, ok, err := s.kv.Get(ctx, KeyToken)
	if err != nil {
		return "", false, fmt.Errorf("read token: %w", err)
	}
	return token, ok, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyUser); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if err := s.kv.Delete(ctx, KeyToken); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
