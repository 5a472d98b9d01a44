package cachemanager

import (
	"context"
	"sync/atomic"
	"time"
)

// LoadFunc produces the value for a cache miss from its input.
type LoadFunc[I, V any] func(ctx context.Context, input I) (V, error)

// Stats counts lookups served by a ReadThroughCache.
type Stats struct {
	Hits   int64
	Misses int64
}

// ReadThroughCache fills a CacheManager on demand. Failed loads are returned
// to the caller and never stored.
type ReadThroughCache[K comparable, V any, I any] struct {
	cache  CacheManager[K, V]
	load   LoadFunc[I, V]
	bypass bool
	hits   atomic.Int64
	misses atomic.Int64
}

// Option configures a ReadThroughCache.
type Option func(*options)

type options struct {
	bypass bool
}

// WithBypass sends every lookup straight to the loader. Useful when
// rendering must reflect live state, e.g. while tuning styles.
func WithBypass(bypass bool) Option {
	return func(o *options) { o.bypass = bypass }
}

// NewReadThroughCache wraps cache with load.
func NewReadThroughCache[K comparable, V any, I any](cache CacheManager[K, V], load LoadFunc[I, V], opts ...Option) *ReadThroughCache[K, V, I] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &ReadThroughCache[K, V, I]{cache: cache, load: load, bypass: o.bypass}
}

// Get returns the value cached under key, loading it from input on a miss.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	return r.lookup(ctx, key, input, ttl, func() (V, bool) { return r.cache.Get(ctx, key) })
}

// GetWithRefresh is Get, but a hit also pushes the entry's expiry out by ttl.
func (r *ReadThroughCache[K, V, I]) GetWithRefresh(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	return r.lookup(ctx, key, input, ttl, func() (V, bool) { return r.cache.GetWithRefresh(ctx, key, ttl) })
}

// Stats returns hit and miss counts. Bypassed lookups count as misses.
func (r *ReadThroughCache[K, V, I]) Stats() Stats {
	return Stats{Hits: r.hits.Load(), Misses: r.misses.Load()}
}

// Invalidate drops every cached entry.
func (r *ReadThroughCache[K, V, I]) Invalidate(ctx context.Context) error {
	return r.cache.Flush(ctx)
}

func (r *ReadThroughCache[K, V, I]) lookup(ctx context.Context, key K, input I, ttl time.Duration, cached func() (V, bool)) (V, error) {
	if !r.bypass {
		if value, ok := cached(); ok {
			r.hits.Add(1)
			return value, nil
		}
	}
	r.misses.Add(1)

	value, err := r.load(ctx, input)
	if err != nil || r.bypass {
		return value, err
	}
	r.cache.Set(ctx, key, value, ttl)
	return value, nil
}
