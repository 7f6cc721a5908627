package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	BackendBadger = "badger"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	LogFile  string `env:"LOG_FILE"`

	API    APIConfig
	Store  StoreConfig
	Portal PortalConfig
}

type APIConfig struct {
	BaseURL string `env:"API_BASE_URL, default=http://localhost:8000/api"`
	// Timeout of zero leaves requests unbounded; callers cancel through ctx.
	Timeout time.Duration `env:"API_TIMEOUT, default=0s"`
}

type StoreConfig struct {
	Backend string `env:"STORE_BACKEND, default=badger"`
	Path    string `env:"STORE_PATH,    default=.workbridge"`

	Redis RedisConfig
	Mongo MongoConfig
}

type RedisConfig struct {
	Addr   string `env:"REDIS_ADDR,   default=localhost:6379"`
	DB     int    `env:"REDIS_DB,     default=0"`
	Prefix string `env:"REDIS_PREFIX, default=workbridge:"`
}

type MongoConfig struct {
	URI        string `env:"MONGO_URI,        default=mongodb://localhost:27017"`
	Database   string `env:"MONGO_DB,         default=workbridge"`
	Collection string `env:"MONGO_COLLECTION, default=local_storage"`
}

type PortalConfig struct {
	Addr string `env:"PORTAL_ADDR, default=:8080"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendBadger, BackendRedis, BackendMongo, BackendMemory:
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q", c.Store.Backend)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("config: API_TIMEOUT must not be negative")
	}
	return nil
}
