// Package app wires configuration, storage, the backend client and services
// into one value shared by the CLI and the portal.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/workbridge/client/internal/core/ports"
	"github.com/workbridge/client/internal/core/service"
	"github.com/workbridge/client/internal/infrastructure/config"
	badgerkv "github.com/workbridge/client/internal/infrastructure/db/badger"
	"github.com/workbridge/client/internal/infrastructure/db/memory"
	mongokv "github.com/workbridge/client/internal/infrastructure/db/mongo"
	rediskv "github.com/workbridge/client/internal/infrastructure/db/redis"
	"github.com/workbridge/client/internal/infrastructure/remote"
	"github.com/workbridge/client/internal/infrastructure/storage/local"
)

// App holds the assembled dependencies.
type App struct {
	Config   *config.Config
	Log      zerolog.Logger
	Store    ports.KVStore
	Remote   ports.RemoteAPI
	Auth     ports.AuthService
	Profiles ports.ProfileService
	Jobs     ports.JobService
}

// New opens the configured store and builds the services on top of it.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	store, err := OpenStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	api := remote.NewClient(remote.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}, component(log, "remote"))
	return Assemble(cfg, log, store, api), nil
}

// Assemble builds the services from an already opened store and backend client.
func Assemble(cfg *config.Config, log zerolog.Logger, store ports.KVStore, api ports.RemoteAPI) *App {
	accounts := local.NewAccountStore(store)
	sessions := local.NewSessionStore(store)

	return &App{
		Config:   cfg,
		Log:      log,
		Store:    store,
		Remote:   api,
		Auth:     service.NewAuthService(api, accounts, sessions, component(log, "auth")),
		Profiles: service.NewProfileService(accounts, sessions, component(log, "profile")),
		Jobs:     service.NewJobService(api, sessions, component(log, "jobs")),
	}
}

func component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// OpenStore returns the ports.KVStore selected by cfg.Backend.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (ports.KVStore, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memory.NewKVStore(), nil
	case config.BackendRedis:
		return rediskv.Open(ctx, rediskv.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB, Prefix: cfg.Redis.Prefix})
	case config.BackendMongo:
		return mongokv.Open(ctx, mongokv.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, Collection: cfg.Mongo.Collection})
	case config.BackendBadger, "":
		path, err := filepath.Abs(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("resolve store path: %w", err)
		}
		if err := os.MkdirAll(path, 0o700); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
		return badgerkv.Open(badgerkv.Config{Path: path})
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
