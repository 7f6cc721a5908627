package local

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/workbridge/client/internal/core/domain"
	"github.com/workbridge/client/internal/core/ports"
)

// AccountStore keeps fallback accounts as a JSON array under "accounts" and
// profiles as a JSON object under "profiles". Every write is an unguarded
// read-modify-write: concurrent writers can clobber each other.
type AccountStore struct {
	kv ports.KVStore
}

func NewAccountStore(kv ports.KVStore) *AccountStore {
	return &AccountStore{kv: kv}
}

func (s *AccountStore) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := s.read(ctx, KeyAccounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// AppendAccount adds account to the list. Duplicate usernames or emails are
// accepted.
func (s *AccountStore) AppendAccount(ctx context.Context, account domain.Account) error {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return err
	}
	return s.write(ctx, KeyAccounts, append(accounts, account))
}

func (s *AccountStore) GetProfile(ctx context.Context, accountID string) (domain.Profile, bool, error) {
	profiles, err := s.profiles(ctx)
	if err != nil {
		return domain.Profile{}, false, err
	}
	p, ok := profiles[accountID]
	return p, ok, nil
}

func (s *AccountStore) SaveProfile(ctx context.Context, accountID string, profile domain.Profile) error {
	profiles, err := s.profiles(ctx)
	if err != nil {
		return err
	}
	profiles[accountID] = profile
	return s.write(ctx, KeyProfiles, profiles)
}

func (s *AccountStore) profiles(ctx context.Context) (map[string]domain.Profile, error) {
	profiles := map[string]domain.Profile{}
	if err := s.read(ctx, KeyProfiles, &profiles); err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = map[string]domain.Profile{}
	}
	return profiles, nil
}

func (s *AccountStore) read(ctx context.Context, key string, out any) error {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *AccountStore) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
