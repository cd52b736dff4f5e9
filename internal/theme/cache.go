package theme

import (
	"sync"

	"github.com/zjrosen/themepark/internal/cachemanager"
	"github.com/zjrosen/themepark/internal/log"
)

// Cache memoizes a Styler. Each distinct Query is computed at most once per
// Cache; entries never expire. Safe for concurrent use.
type Cache struct {
	styler Styler
	mu     sync.Mutex
	styles cachemanager.CacheManager[string, Style]
}

var _ Styler = (*Cache)(nil)

// NewCache wraps s.
func NewCache(s Styler) *Cache {
	return &Cache{
		styler: s,
		styles: cachemanager.NewInMemoryCacheManager[string, Style]("styles", cachemanager.NoExpiration, 0),
	}
}

func (c *Cache) Style(q Query) Style {
	key := q.String()
	if s, ok := c.styles.Get(key); ok {
		return s
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have filled it while we waited.
	if s, ok := c.styles.Get(key); ok {
		return s
	}

	s := c.styler.Style(q)
	c.styles.Set(key, s, cachemanager.NoExpiration)
	log.Debug(log.CatCache, "style computed", "query", key)
	return s
}

// SupportedVariants is not cached.
func (c *Cache) SupportedVariants() VariantSet {
	return c.styler.SupportedVariants()
}

// Len reports the number of memoized queries.
func (c *Cache) Len() int {
	return c.styles.Len()
}

// Unwrap returns the cached styler.
func (c *Cache) Unwrap() Styler {
	return c.styler
}
