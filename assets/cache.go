package assets

import (
	"sync"
	"time"
)

type cacheEntry struct {
	img       Image
	expiresAt time.Time
}

// imageCache is an in-memory TTL cache for fetched images. Batch exports
// render the same logo into every document; the cache keeps that to one
// network round trip.
type imageCache struct {
	mu    sync.RWMutex
	items map[string]cacheEntry
}

func newImageCache() *imageCache {
	return &imageCache{items: make(map[string]cacheEntry)}
}

func (c *imageCache) get(key string) (Image, bool) {
	if c == nil {
		return Image{}, false
	}
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return Image{}, false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return Image{}, false
	}
	return entry.img, true
}

func (c *imageCache) set(key string, img Image, ttl time.Duration) {
	if c == nil {
		return
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.items[key] = cacheEntry{img: img, expiresAt: expiresAt}
	c.mu.Unlock()
}
