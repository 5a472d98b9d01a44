// Package cachemanager holds typed caches for values that are expensive to
// produce. The chat thread uses it to keep rendered Markdown per message
// and width.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is a typed key/value store with per-entry expiry.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	// GetMultiple returns the cached subset of keys; false when none hit.
	GetMultiple(ctx context.Context, keys []K) (map[K]V, bool)
	// GetWithRefresh is Get that also extends the entry's expiry to ttl.
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
