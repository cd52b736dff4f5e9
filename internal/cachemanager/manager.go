// Package cachemanager provides typed wrappers over in-process key/value caches.
package cachemanager

import "time"

// CacheManager is a typed key/value cache.
type CacheManager[K ~string, V any] interface {
	Get(key K) (V, bool)
	GetMultiple(keys []K) (map[K]V, bool)
	Set(key K, value V, ttl time.Duration)
	Delete(keys ...K)
	Flush()
	Len() int
}
