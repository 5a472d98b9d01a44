package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type renderedMessage struct {
	ID    string
	Width int
	Body  string
}

func newRenderCache() *InMemoryCacheManager[string, string] {
	return NewInMemoryCacheManager[string, string]("render", DefaultExpiration, DefaultCleanupInterval)
}

func TestInMemoryCacheManager_StructValues(t *testing.T) {
	cache := NewInMemoryCacheManager[string, renderedMessage]("render", DefaultExpiration, DefaultCleanupInterval)
	msg := renderedMessage{ID: "m1", Width: 40, Body: "hello"}
	cache.Set(context.Background(), "m1:40", msg, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "m1:40")
	require.True(t, ok)
	require.Equal(t, msg, got)
}

func TestInMemoryCacheManager_Miss(t *testing.T) {
	got, ok := newRenderCache().Get(context.Background(), "m1:40")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_WrongTypeIsMiss(t *testing.T) {
	cache := newRenderCache()
	cache.cache.Set("m1:40", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "m1:40")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_TypedKeys(t *testing.T) {
	type messageKey string
	cache := NewInMemoryCacheManager[messageKey, string]("render", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), messageKey("m1"), "body", time.Minute)

	got, ok := cache.Get(context.Background(), "m1")
	require.True(t, ok)
	require.Equal(t, "body", got)
}

func TestInMemoryCacheManager_GetMultiple(t *testing.T) {
	cache := newRenderCache()
	ctx := context.Background()

	got, ok := cache.GetMultiple(ctx, nil)
	require.False(t, ok)
	require.Nil(t, got)

	got, ok = cache.GetMultiple(ctx, []string{"a", "b"})
	require.False(t, ok)
	require.Nil(t, got)

	cache.Set(ctx, "a", "A", time.Minute)
	cache.cache.Set("b", 7, time.Minute)
	got, ok = cache.GetMultiple(ctx, []string{"a", "b", "c"})
	require.True(t, ok)
	require.Equal(t, map[string]string{"a": "A"}, got)
}

func TestInMemoryCacheManager_Expiry(t *testing.T) {
	cache := newRenderCache()
	cache.Set(context.Background(), "m1", "body", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get(context.Background(), "m1")
	require.False(t, ok)
}

func TestInMemoryCacheManager_GetWithRefresh(t *testing.T) {
	cache := newRenderCache()
	ctx := context.Background()

	_, ok := cache.GetWithRefresh(ctx, "m1", time.Hour)
	require.False(t, ok)

	cache.Set(ctx, "m1", "body", 30*time.Millisecond)
	got, ok := cache.GetWithRefresh(ctx, "m1", time.Hour)
	require.True(t, ok)
	require.Equal(t, "body", got)

	time.Sleep(50 * time.Millisecond)
	_, ok = cache.Get(ctx, "m1")
	require.True(t, ok, "refresh extended the ttl")
}

func TestInMemoryCacheManager_DeleteAndFlush(t *testing.T) {
	cache := newRenderCache()
	ctx := context.Background()
	require.NoError(t, cache.Delete(ctx))

	cache.Set(ctx, "a", "A", time.Minute)
	cache.Set(ctx, "b", "B", time.Minute)
	require.NoError(t, cache.Delete(ctx, "a"))
	_, ok := cache.Get(ctx, "a")
	require.False(t, ok)
	require.Equal(t, 1, cache.Len())

	require.NoError(t, cache.Flush(ctx))
	require.Equal(t, 0, cache.Len())
}
