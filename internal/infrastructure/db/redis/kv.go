package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dialTimeout = 5 * time.Second

// Config selects the server and the key namespace.
type Config struct {
	Addr   string
	DB     int
	Prefix string
	// Timeout bounds the initial ping. Defaults to 5s.
	Timeout time.Duration
}

// KVStore stores each key as a plain Redis string, without expiry.
// Key format: <prefix><key>, e.g. workbridge:accounts
type KVStore struct {
	client *redis.Client
	prefix string
}

// NewKVStore wraps the given Redis client. prefix namespaces every key.
func NewKVStore(client *redis.Client, prefix string) *KVStore {
	return &KVStore{client: client, prefix: prefix}
}

// Open connects to the server described by cfg and checks it answers a ping.
func Open(ctx context.Context, cfg Config) (*KVStore, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = dialTimeout
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return NewKVStore(client, cfg.Prefix), nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return v, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *KVStore) Close() error {
	return s.client.Close()
}

func (s *KVStore) key(k string) string {
	return s.prefix + k
}
