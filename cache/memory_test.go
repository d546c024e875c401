package cache_test

import (
	"testing"
	"time"

	"safarihub/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemory(t *testing.T) *cache.Memory {
	t.Helper()

	m := cache.NewMemory(time.Minute)
	t.Cleanup(m.Close)
	return m
}

func TestMemorySetGet(t *testing.T) {
	m := newMemory(t)

	m.Set("tours:featured:6", []string{"a", "b"}, time.Minute)

	got, ok := m.Get("tours:featured:6")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	_, ok = m.Get("tours:featured:12")
	assert.False(t, ok)
}

func TestMemoryStaleEntriesMiss(t *testing.T) {
	m := newMemory(t)

	m.Set("destinations:active", "stale soon", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, ok := m.Get("destinations:active")
	assert.False(t, ok)
}

func TestMemoryInvalidate(t *testing.T) {
	m := newMemory(t)

	m.Set("blogs:published", 1, time.Minute)
	m.Invalidate("blogs:published")

	_, ok := m.Get("blogs:published")
	assert.False(t, ok)
}

func TestMemoryInvalidatePrefix(t *testing.T) {
	m := newMemory(t)

	m.Set("tours:featured:6", 1, time.Minute)
	m.Set("tours:category:safari", 2, time.Minute)
	m.Set("destinations:active", 3, time.Minute)

	m.InvalidatePrefix("tours:")

	_, ok := m.Get("tours:featured:6")
	assert.False(t, ok)
	_, ok = m.Get("tours:category:safari")
	assert.False(t, ok)

	got, ok := m.Get("destinations:active")
	require.True(t, ok)
	assert.Equal(t, 3, got)
}

func TestMemoryOverwriteRefreshes(t *testing.T) {
	m := newMemory(t)

	m.Set("k", "old", 10*time.Millisecond)
	m.Set("k", "new", time.Minute)
	time.Sleep(30 * time.Millisecond)

	got, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", got)
}
