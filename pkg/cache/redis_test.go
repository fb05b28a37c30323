package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client, "insights"), mr
}

func TestRedisCache_SetGetExpire(t *testing.T) {
	ctx := context.Background()
	c, mr := setupRedisCache(t)

	require.NoError(t, c.Set(ctx, "gaps:acc1", []byte(`{"days_missing":2}`), time.Minute))
	assert.True(t, mr.Exists("insights:gaps:acc1"))

	value, ok, err := c.Get(ctx, "gaps:acc1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"days_missing":2}`, string(value))

	mr.FastForward(2 * time.Minute)

	_, ok, err = c.Get(ctx, "gaps:acc1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_Clear(t *testing.T) {
	ctx := context.Background()
	c, mr := setupRedisCache(t)

	for _, key := range []string{"gaps:acc1:a", "gaps:acc1:b", "gaps:acc2:a"} {
		require.NoError(t, c.Set(ctx, key, []byte("x"), time.Hour))
	}

	require.NoError(t, c.Clear(ctx, "gaps:acc1:"))

	assert.False(t, mr.Exists("insights:gaps:acc1:a"))
	assert.False(t, mr.Exists("insights:gaps:acc1:b"))
	assert.True(t, mr.Exists("insights:gaps:acc2:a"))

	require.NoError(t, c.Delete(ctx, "gaps:acc2:a"))
	assert.False(t, mr.Exists("insights:gaps:acc2:a"))
}

func TestRedisCache_GetError(t *testing.T) {
	ctx := context.Background()
	c, mr := setupRedisCache(t)

	mr.Close()

	_, ok, err := c.Get(ctx, "gaps:acc1")
	assert.Error(t, err)
	assert.False(t, ok)
}
