package cachemanager

import "time"

// ReadThroughCache fills a CacheManager from fn on miss. Errors are not cached.
type ReadThroughCache[K ~string, V any, I any] struct {
	cache           CacheManager[K, V]
	fn              func(input I) (V, error)
	shouldSkipCache bool
}

func NewReadThroughCache[K ~string, V any, I any](
	cache CacheManager[K, V],
	fn func(input I) (V, error),
	shouldSkipCache bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache:           cache,
		fn:              fn,
		shouldSkipCache: shouldSkipCache,
	}
}

func (r *ReadThroughCache[K, V, I]) Get(key K, input I, ttl time.Duration) (V, error) {
	if r.shouldSkipCache {
		return r.fn(input)
	}

	if value, ok := r.cache.Get(key); ok {
		return value, nil
	}

	value, err := r.fn(input)
	if err != nil {
		return value, err
	}

	r.cache.Set(key, value, ttl)

	return value, nil
}

// Invalidate drops cached values for the given keys.
func (r *ReadThroughCache[K, V, I]) Invalidate(keys ...K) {
	r.cache.Delete(keys...)
}
