package assets

import (
	"image"
	"sync"

	"github.com/litai12/Tanva-sub005/internal/source"
)

// Resolver resolves an asset key to a decoded NRGBA image.
type Resolver interface {
	Resolve(key string) *image.NRGBA
}

// Cache is a concurrency-safe decode cache over a Store: the first Resolve
// of a key decodes from disk, later ones return the same image. Failed
// decodes are cached as nil so bad assets are not re-read on every call.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
	store *Store
}

// NewCache creates a cache backed by the given store.
func NewCache(store *Store) *Cache {
	return &Cache{
		items: make(map[string]*image.NRGBA),
		store: store,
	}
}

// Resolve returns the decoded image for a key. Returns nil when the key is
// unknown or the stored bytes do not decode.
func (c *Cache) Resolve(key string) *image.NRGBA {
	c.mu.RLock()
	img, cached := c.items[key]
	c.mu.RUnlock()
	if cached {
		return img
	}

	path, ok := c.store.Path(key)
	if !ok {
		return nil
	}
	img, _ = source.Load(path)

	c.mu.Lock()
	// Another goroutine may have decoded the same key meanwhile; keep
	// the first decode so callers always see one image per key.
	if prior, cached := c.items[key]; cached {
		c.mu.Unlock()
		return prior
	}
	c.items[key] = img
	c.mu.Unlock()

	return img
}
