package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"

	"golang.org/x/sync/singleflight"
)

// listing is one cached product listing.
type listing struct {
	products []models.Product
	built    time.Time
}

// listCache memoizes product listings per filter for a TTL. Concurrent misses
// on the same filter share one query.
type listCache struct {
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]listing
	gen     uint64
	sf      singleflight.Group
}

func newListCache(ttl time.Duration) *listCache {
	return &listCache{ttl: ttl, entries: make(map[string]listing)}
}

func (c *listCache) fresh(key string) ([]models.Product, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || time.Since(e.built) > c.ttl {
		return nil, false
	}
	return e.products, true
}

// get returns the cached listing for key or builds it.
func (c *listCache) get(ctx context.Context, key string, build func(ctx context.Context) ([]models.Product, error)) ([]models.Product, error) {
	if products, ok := c.fresh(key); ok {
		return products, nil
	}

	c.mu.RLock()
	gen := c.gen
	c.mu.RUnlock()

	// The generation is part of the flight key so a build started before an
	// invalidation is never shared with callers arriving after it.
	v, err, _ := c.sf.Do(fmt.Sprintf("%d|%s", gen, key), func() (any, error) {
		if products, ok := c.fresh(key); ok {
			return products, nil
		}
		// Shared by every waiter, so one caller going away must not fail the rest.
		products, err := build(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.gen == gen && c.ttl > 0 {
			c.entries[key] = listing{products: products, built: time.Now()}
		}
		c.mu.Unlock()
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Product), nil
}

// invalidate drops every entry.
func (c *listCache) invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]listing)
	c.gen++
	c.mu.Unlock()
}
