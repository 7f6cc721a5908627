package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/workbridge/client/internal/core/domain"
	"github.com/workbridge/client/internal/core/ports"
)

// ProfileService reads and edits profiles. Profiles only ever live in the
// local store; the backend is not consulted.
type ProfileService struct {
	profiles ports.ProfileStore
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewProfileService(profiles ports.ProfileStore, sessions ports.SessionStore, log zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, sessions: sessions, log: log}
}

// Get returns the stored profile, or an empty one if none was saved yet.
func (s *ProfileService) Get(ctx context.Context, accountID string) (domain.Profile, error) {
	profile, _, err := s.profiles.GetProfile(ctx, accountID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}

// Update replaces the profile stored for accountID.
func (s *ProfileService) Update(ctx context.Context, accountID string, profile domain.Profile) error {
	if accountID == "" {
		return domain.ErrInvalidInput
	}
	if profile.HourlyRate.IsNegative() {
		return fmt.Errorf("%w: hourly rate cannot be negative", domain.ErrInvalidInput)
	}
	if err := s.profiles.SaveProfile(ctx, accountID, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	s.log.Info().Str("account_id", accountID).Msg("profile updated")
	return nil
}

func (s *ProfileService) Current(ctx context.Context) (*domain.Account, domain.Profile, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, domain.Profile{}, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, domain.Profile{}, domain.ErrNotAuthenticated
	}
	profile, err := s.Get(ctx, session.User.ID)
	if err != nil {
		return nil, domain.Profile{}, err
	}
	return &session.User, profile, nil
}
