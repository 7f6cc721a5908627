package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/workbridge/client/internal/infrastructure/db/kvtest"
)

// Runs against a live server; set REDIS_TEST_ADDR to enable.
func TestKVStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	store, err := Open(context.Background(), Config{
		Addr:    addr,
		Prefix:  fmt.Sprintf("workbridge-test:%d:", time.Now().UnixNano()),
		Timeout: 2 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	kvtest.Run(t, store)
}

func TestKVStore_Key(t *testing.T) {
	s := &KVStore{prefix: "workbridge:"}
	if got := s.key("accounts"); got != "workbridge:accounts" {
		t.Fatalf("unexpected key %q", got)
	}
}
