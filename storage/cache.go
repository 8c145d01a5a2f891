package storage

import (
	"sync"

	"laptop-dashboard/models"
)

// Cache holds the cleaned dataset for the process lifetime, keyed by source
// path. The source file is static per run, so entries are never invalidated.
// Cached slices are shared read-only; consumers must not mutate them.
type Cache struct {
	mu   sync.Mutex
	sets map[string][]*models.Listing
}

// NewCache creates an empty dataset cache.
func NewCache() *Cache {
	return &Cache{sets: make(map[string][]*models.Listing)}
}

// GetOrFill returns the cached dataset for key, calling fill exactly once per
// key to produce it. A fill error is returned without caching, so a transient
// failure does not pin an empty dataset.
func (c *Cache) GetOrFill(key string, fill func() ([]*models.Listing, error)) ([]*models.Listing, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.sets[key]; ok {
		return cached, nil
	}

	listings, err := fill()
	if err != nil {
		return nil, err
	}
	c.sets[key] = listings
	return listings, nil
}
