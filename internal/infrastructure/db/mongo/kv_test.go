package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/workbridge/client/internal/infrastructure/db/kvtest"
)

// Runs against a live server; set MONGO_TEST_URI to enable.
func TestKVStore(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	store, err := Open(context.Background(), Config{
		URI:        uri,
		Database:   "workbridge_test",
		Collection: fmt.Sprintf("kv_%d", time.Now().UnixNano()),
		Timeout:    5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.coll.Drop(context.Background())
		_ = store.Close()
	})

	kvtest.Run(t, store)
}
