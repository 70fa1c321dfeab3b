package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &RedisClient{Client: client}, mr
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	rc, _ := setupRedis(t)
	ctx := context.Background()

	assert.NoError(t, rc.Set(ctx, "k", "v", time.Minute))

	val, err := rc.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, "v", val)

	assert.NoError(t, rc.Delete(ctx, "k"))
	_, err = rc.Get(ctx, "k")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_SetNXLockSemantics(t *testing.T) {
	rc, mr := setupRedis(t)
	ctx := context.Background()

	ok, err := rc.SetNX(ctx, "lock", "a", time.Minute)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Second acquisition fails while the lock is held.
	ok, err = rc.SetNX(ctx, "lock", "b", time.Minute)
	assert.NoError(t, err)
	assert.False(t, ok)

	// After TTL expiry the lock is free again.
	mr.FastForward(2 * time.Minute)
	ok, err = rc.SetNX(ctx, "lock", "c", time.Minute)
	assert.NoError(t, err)
	assert.True(t, ok)
}
