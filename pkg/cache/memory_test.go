package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "gaps:acc1", []byte("v1"), time.Minute))
	require.NoError(t, c.Set(ctx, "forever", []byte("v2"), 0))

	value, ok, err := c.Get(ctx, "gaps:acc1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v1"), value)

	now = now.Add(time.Minute)

	_, ok, err = c.Get(ctx, "gaps:acc1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, _ = c.Get(ctx, "forever")
	assert.True(t, ok)
}

func TestMemoryCache_GetKeepsEntryReplacedAfterExpiry(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	later := start.Add(2 * time.Minute)

	c := NewMemoryCache()
	c.now = func() time.Time { return start }
	require.NoError(t, c.Set(ctx, "gaps:acc1", []byte("antigo"), time.Minute))

	// a primeira leitura do relógio simula um Set concorrente antes do lock de escrita
	replaced := false
	c.now = func() time.Time {
		if !replaced {
			replaced = true
			c.mu.Lock()
			c.entries["gaps:acc1"] = memoryEntry{value: []byte("novo"), expiresAt: later.Add(time.Minute)}
			c.mu.Unlock()
		}
		return later
	}

	value, ok, err := c.Get(ctx, "gaps:acc1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("novo"), value)

	value, ok, _ = c.Get(ctx, "gaps:acc1")
	assert.True(t, ok)
	assert.Equal(t, []byte("novo"), value)
}

func TestMemoryCache_GetRemovesExpiredEntry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	c := NewMemoryCache()
	c.now = func() time.Time { return now }
	require.NoError(t, c.Set(ctx, "gaps:acc1", []byte("v1"), time.Minute))

	now = now.Add(time.Hour)

	_, ok, err := c.Get(ctx, "gaps:acc1")
	require.NoError(t, err)
	assert.False(t, ok)

	c.mu.RLock()
	_, stored := c.entries["gaps:acc1"]
	c.mu.RUnlock()
	assert.False(t, stored)
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_ = c.Set(ctx, "gaps:acc1:a", []byte("1"), time.Hour)
	_ = c.Set(ctx, "gaps:acc1:b", []byte("2"), time.Hour)
	_ = c.Set(ctx, "gaps:acc2:a", []byte("3"), time.Hour)
	_ = c.Set(ctx, "oauth:state", []byte("4"), time.Hour)

	require.NoError(t, c.Clear(ctx, "gaps:acc1:"))

	_, ok, _ := c.Get(ctx, "gaps:acc1:a")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "gaps:acc2:a")
	assert.True(t, ok)

	require.NoError(t, c.Delete(ctx, "oauth:state"))
	_, ok, _ = c.Get(ctx, "oauth:state")
	assert.False(t, ok)

	require.NoError(t, c.Clear(ctx, ""))
	_, ok, _ = c.Get(ctx, "gaps:acc2:a")
	assert.False(t, ok)
}
