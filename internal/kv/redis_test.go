package kv

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client), srv
}

func TestRedis_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedis(t)

	require.NoError(t, store.Set(ctx, "status_abc", "waiting", time.Hour))

	val, ok, err := store.Get(ctx, "status_abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "waiting", val)

	require.NoError(t, store.Delete(ctx, "status_abc"))

	_, ok, err = store.Get(ctx, "status_abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_AbsentKey(t *testing.T) {
	store, _ := newTestRedis(t)

	val, ok, err := store.Get(context.Background(), "never_written")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestRedis_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store, srv := newTestRedis(t)

	require.NoError(t, store.Set(ctx, "lock_abc", "1", time.Minute))

	_, ok, err := store.Get(ctx, "lock_abc")
	require.NoError(t, err)
	assert.True(t, ok)

	srv.FastForward(61 * time.Second)

	_, ok, err = store.Get(ctx, "lock_abc")
	require.NoError(t, err)
	assert.False(t, ok, "expired key must behave as absent")
}

func TestDial_Unreachable(t *testing.T) {
	_, err := Dial("127.0.0.1:1", "")
	assert.Error(t, err)
}
