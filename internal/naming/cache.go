package naming

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds a [Cache] when NewCache is given a non-positive size.
const DefaultCacheSize = 1024

type cacheKey struct {
	name string
	opts Options
}

// Cache memoizes [Normalize]. Front ends rebuild the whole preview on every
// option toggle; the same (name, options) pairs recur and are served from an
// LRU instead of re-running the Unicode transforms. Safe for concurrent use.
type Cache struct {
	entries *lru.Cache[cacheKey, string]
}

// NewCache returns a Cache holding at most size results.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[cacheKey, string](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Normalize returns the cached result for (name, opts), computing and storing
// it on a miss. Results are identical to calling [Normalize] directly.
func (c *Cache) Normalize(name string, opts Options) string {
	key := cacheKey{name: name, opts: opts}
	if v, ok := c.entries.Get(key); ok {
		return v
	}
	v := Normalize(name, opts)
	c.entries.Add(key, v)
	return v
}

// Len returns the number of cached results.
func (c *Cache) Len() int { return c.entries.Len() }

// Purge drops every cached result.
func (c *Cache) Purge() { c.entries.Purge() }
