package texture

import (
	"sync"

	"github.com/ryanw/toru/colors"
)

// Cache is a concurrency-safe, load-once texture cache keyed by path.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*Texture[colors.Color]
}

func NewCache() *Cache {
	return &Cache{items: make(map[string]*Texture[colors.Color])}
}

// Load returns the cached texture for path, reading it from disk on
// first use. Failed loads are not cached.
func (c *Cache) Load(path string) (*Texture[colors.Color], error) {
	c.mu.RLock()
	t, ok := c.items[path]
	c.mu.RUnlock()
	if ok {
		return t, nil
	}

	t, err := Load(path)
	if err != nil {
		return nil, err
	}

	// double-check under the write lock: another goroutine may have
	// loaded the same path while we read the file
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.items[path]; ok {
		return prev, nil
	}
	c.items[path] = t
	return t, nil
}
