package catalog

import (
	"context"
	"sync"

	"wed-storefront/models"
)

// State describes what a presentation surface should render while the
// catalog cache is between refreshes.
type State int

const (
	// StateLoading means the first fetch has not completed yet. Surfaces
	// render a loading indicator, not an empty-catalog message.
	StateLoading State = iota
	// StateReady means remote products are being served.
	StateReady
	// StateFallback means the remote was unavailable or empty and the
	// static catalog is being served.
	StateFallback
)

// Cache holds the most recently resolved catalog and refreshes it in the
// background. A refresh started before a newer one completes is discarded
// by generation: a stale response never overwrites fresher data.
type Cache struct {
	resolver *Resolver

	mu       sync.Mutex
	products []models.Product
	state    State
	gen      uint64
}

// NewCache creates a Cache in the loading state. Call Refresh to populate it.
func NewCache(resolver *Resolver) *Cache {
	return &Cache{
		resolver: resolver,
		state:    StateLoading,
	}
}

// Refresh starts an asynchronous catalog fetch. It returns immediately; the
// cache keeps serving its previous contents until the fetch completes.
func (c *Cache) Refresh(ctx context.Context, opts ListOptions) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	go func() {
		products, fellBack := c.resolver.resolve(ctx, opts)

		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.gen {
			// A newer refresh superseded this one; drop the result.
			return
		}
		c.products = products
		if fellBack {
			c.state = StateFallback
		} else {
			c.state = StateReady
		}
	}()
}

// Products returns the cached catalog and its state. While loading, the
// product slice is empty and the state distinguishes that from a genuinely
// empty catalog.
func (c *Cache) Products() ([]models.Product, State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out, c.state
}
