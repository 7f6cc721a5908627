// Package kvtest holds the behaviour every ports.KVStore adapter must share.
package kvtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workbridge/client/internal/core/ports"
)

// Run exercises store against the KVStore contract. The store should start
// without the keys used here.
func Run(t *testing.T, store ports.KVStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		v, ok, err := store.Get(ctx, "kvtest:missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "kvtest:user", `{"username":"alice"}`))
		v, ok, err := store.Get(ctx, "kvtest:user")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"username":"alice"}`, v)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "kvtest:token", "a"))
		require.NoError(t, store.Set(ctx, "kvtest:token", "b"))
		v, _, err := store.Get(ctx, "kvtest:token")
		require.NoError(t, err)
		assert.Equal(t, "b", v)
	})

	t.Run("empty value is present", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "kvtest:empty", ""))
		_, ok, err := store.Get(ctx, "kvtest:empty")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "kvtest:gone", "x"))
		require.NoError(t, store.Delete(ctx, "kvtest:gone"))
		_, ok, err := store.Get(ctx, "kvtest:gone")
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, store.Delete(ctx, "kvtest:never-set"))
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}
