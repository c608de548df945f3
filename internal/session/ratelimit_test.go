package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movecar-service/internal/kv"
)

func TestRateLimiter_AllowThenDeny(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kv.NewMemory())
	rl := NewRateLimiter(store)

	allowed, err := rl.Allow(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, allowed)

	// The caller writes the lock, as notify does.
	require.NoError(t, store.Put(ctx, "abc", FieldLock, "1", DefaultCooldown))

	allowed, err = rl.Allow(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRateLimiter_AllowedAfterCooldown(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := NewStore(kv.NewMemoryWithClock(func() time.Time { return now }))
	rl := NewRateLimiter(store)

	require.NoError(t, store.Put(ctx, "abc", FieldLock, "1", DefaultCooldown))

	now = now.Add(DefaultCooldown + time.Second)

	allowed, err := rl.Allow(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimiter_PerSession(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kv.NewMemory())
	rl := NewRateLimiter(store)

	require.NoError(t, store.Put(ctx, "alice", FieldLock, "1", DefaultCooldown))

	allowed, err := rl.Allow(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, allowed, "alice's cooldown must not affect bob")
}
