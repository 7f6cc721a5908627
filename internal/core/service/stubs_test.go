package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/workbridge/client/internal/core/domain"
	"github.com/workbridge/client/internal/core/ports"
	"github.com/workbridge/client/internal/infrastructure/db/memory"
	"github.com/workbridge/client/internal/infrastructure/storage/local"
)

var errConnRefused = fmt.Errorf("/login/: %w: dial tcp: connection refused", domain.ErrRemoteUnavailable)

// stubRemote answers every call with the configured function, or with
// errConnRefused when none is set.
type stubRemote struct {
	registerFn func(in domain.RegisterInput) (*domain.Account, error)
	loginFn    func(creds domain.Credentials) (*ports.LoginResult, error)
	jobsFn     func(token string) ([]domain.Job, error)
	applyFn    func(token string, in domain.ApplicationInput) (*domain.Application, error)
	appsFn     func(token string) ([]domain.Application, error)
	calls      int
}

func (r *stubRemote) Register(_ context.Context, in domain.RegisterInput) (*domain.Account, error) {
	r.calls++
	if r.registerFn == nil {
		return nil, errConnRefused
	}
	return r.registerFn(in)
}

func (r *stubRemote) Login(_ context.Context, creds domain.Credentials) (*ports.LoginResult, error) {
	r.calls++
	if r.loginFn == nil {
		return nil, errConnRefused
	}
	return r.loginFn(creds)
}

func (r *stubRemote) ListJobs(_ context.Context, token string) ([]domain.Job, error) {
	r.calls++
	if r.jobsFn == nil {
		return nil, errConnRefused
	}
	return r.jobsFn(token)
}

func (r *stubRemote) Apply(_ context.Context, token string, in domain.ApplicationInput) (*domain.Application, error) {
	r.calls++
	if r.applyFn == nil {
		return nil, errConnRefused
	}
	return r.applyFn(token, in)
}

func (r *stubRemote) MyApplications(_ context.Context, token string) ([]domain.Application, error) {
	r.calls++
	if r.appsFn == nil {
		return nil, errConnRefused
	}
	return r.appsFn(token)
}

func (r *stubRemote) Ping(context.Context) error {
	return errConnRefused
}

// failingKV fails every write, to exercise local-store error paths.
type failingKV struct {
	*memory.KVStore
}

func (failingKV) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

type fixture struct {
	kv       *memory.KVStore
	accounts *local.AccountStore
	sessions *local.SessionStore
}

func newFixture() fixture {
	kv := memory.NewKVStore()
	return fixture{
		kv:       kv,
		accounts: local.NewAccountStore(kv),
		sessions: local.NewSessionStore(kv),
	}
}
