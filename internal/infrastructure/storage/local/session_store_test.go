package local

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workbridge/client/internal/core/domain"
	"github.com/workbridge/client/internal/infrastructure/db/memory"
)

func TestSessionStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	store := NewSessionStore(kv)

	session, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	_, ok, err := store.Token(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, domain.Session{
		User:  domain.Account{ID: "1", Username: "alice", IsFreelancer: true},
		Token: "tok",
	}))

	session, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "alice", session.User.Username)
	assert.True(t, session.User.IsFreelancer)
	assert.Equal(t, "tok", session.Token)

	_, ok, _ = kv.Get(ctx, KeyUser)
	assert.True(t, ok)
	token, _, _ := kv.Get(ctx, KeyToken)
	assert.Equal(t, "tok", token)

	require.NoError(t, store.Clear(ctx))

	session, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
	_, ok, err = store.Token(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_ClearWithoutSession(t *testing.T) {
	assert.NoError(t, NewSessionStore(memory.NewKVStore()).Clear(context.Background()))
}
