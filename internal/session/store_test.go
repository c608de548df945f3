package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movecar-service/internal/kv"
)

func TestStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kv.NewMemory())

	require.NoError(t, store.Put(ctx, "abc", FieldStatus, "waiting", time.Hour))

	val, ok, err := store.Get(ctx, "abc", FieldStatus)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "waiting", val)

	require.NoError(t, store.Delete(ctx, "abc", FieldStatus))

	_, ok, err = store.Get(ctx, "abc", FieldStatus)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_NamespaceIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kv.NewMemory())

	require.NoError(t, store.Put(ctx, "alice", FieldStatus, "waiting", time.Hour))
	require.NoError(t, store.Put(ctx, "alice", FieldLock, "1", time.Minute))

	for _, f := range []Field{FieldStatus, FieldRequesterLocation, FieldOwnerLocation, FieldLock} {
		_, ok, err := store.Get(ctx, "bob", f)
		require.NoError(t, err)
		assert.False(t, ok, "session bob must not observe alice's %s record", f)
	}

	// Deleting under one session leaves the other untouched.
	require.NoError(t, store.Delete(ctx, "bob", FieldStatus))
	_, ok, err := store.Get(ctx, "alice", FieldStatus)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := NewStore(kv.NewMemoryWithClock(func() time.Time { return now }))

	require.NoError(t, store.Put(ctx, "abc", FieldOwnerLocation, `{"lat":1}`, 10*time.Minute))

	now = now.Add(11 * time.Minute)

	_, ok, err := store.Get(ctx, "abc", FieldOwnerLocation)
	require.NoError(t, err)
	assert.False(t, ok)
}
