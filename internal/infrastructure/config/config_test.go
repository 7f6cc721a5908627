package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Equal(t, BackendBadger, cfg.Store.Backend)
	assert.Equal(t, ".workbridge", cfg.Store.Path)
	assert.Equal(t, "workbridge:", cfg.Store.Redis.Prefix)
	assert.Equal(t, "local_storage", cfg.Store.Mongo.Collection)
	assert.Equal(t, ":8080", cfg.Portal.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"API_BASE_URL":  "https://api.example.com",
		"API_TIMEOUT":   "3s",
		"STORE_BACKEND": "redis",
		"REDIS_ADDR":    "cache:6379",
		"REDIS_DB":      "2",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "cache:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
}

func TestLoad_UnknownBackend(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORE_BACKEND": "sqlite",
	}))
	assert.Error(t, err)
}
