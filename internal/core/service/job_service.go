package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/workbridge/client/internal/core/domain"
	"github.com/workbridge/client/internal/core/ports"
)

// JobService talks to the backend's job endpoints with the session token.
// There is no local fallback for jobs.
type JobService struct {
	remote   ports.RemoteAPI
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewJobService(remote ports.RemoteAPI, sessions ports.SessionStore, log zerolog.Logger) *JobService {
	return &JobService{remote: remote, sessions: sessions, log: log}
}

func (s *JobService) ListJobs(ctx context.Context) ([]domain.Job, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.remote.ListJobs(ctx, token)
	if err != nil {
		s.log.Error().Err(err).Msg("error loading jobs")
		return nil, err
	}
	return jobs, nil
}

// Apply submits a proposal. Errors come back unchanged so the caller can show
// the raw message.
func (s *JobService) Apply(ctx context.Context, in domain.ApplicationInput) (*domain.Application, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	app, err := s.remote.Apply(ctx, token, in)
	if err != nil {
		s.log.Error().Err(err).Int64("job_id", in.JobID).Msg("error applying for job")
		return nil, err
	}
	s.log.Info().Int64("job_id", in.JobID).Str("bid", in.BidAmount.String()).Msg("application submitted")
	return app, nil
}

func (s *JobService) MyApplications(ctx context.Context) ([]domain.Application, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	return s.remote.MyApplications(ctx, token)
}

func (s *JobService) token(ctx context.Context) (string, error) {
	token, ok, err := s.sessions.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}
	if !ok {
		return "", domain.ErrNotAuthenticated
	}
	return token, nil
}
