package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "status_abc", "waiting", time.Minute))

	val, ok, err := m.Get(ctx, "status_abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "waiting", val)

	require.NoError(t, m.Delete(ctx, "status_abc"))

	_, ok, err = m.Get(ctx, "status_abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_GetAbsent(t *testing.T) {
	val, ok, err := NewMemory().Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestMemory_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	m := NewMemoryWithClock(func() time.Time { return now })

	require.NoError(t, m.Set(ctx, "lock_abc", "1", time.Minute))

	_, ok, err := m.Get(ctx, "lock_abc")
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(61 * time.Second)

	_, ok, err = m.Get(ctx, "lock_abc")
	require.NoError(t, err)
	assert.False(t, ok, "expired key must behave as absent")
}

func TestMemory_OverwriteResetsTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	m := NewMemoryWithClock(func() time.Time { return now })

	require.NoError(t, m.Set(ctx, "k", "v1", time.Minute))
	now = now.Add(50 * time.Second)
	require.NoError(t, m.Set(ctx, "k", "v2", time.Minute))
	now = now.Add(50 * time.Second)

	val, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", val)
}
