package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gateSource blocks list calls for the "slow" category until its gate
// closes, so a test can make an older fetch finish after a newer one.
type gateSource struct {
	gate chan struct{}
}

func (g *gateSource) List(ctx context.Context, opts ListOptions) ([]Record, error) {
	if opts.Category == "slow" {
		<-g.gate
		return []Record{{ID: "stale"}}, nil
	}
	return []Record{{ID: "fresh"}}, nil
}

func (g *gateSource) Get(ctx context.Context, id string) (Record, error) {
	return Record{}, ErrNotFound
}

func TestCacheStartsLoading(t *testing.T) {
	cache := NewCache(NewResolver(&fakeSource{}, testLogger()))

	products, state := cache.Products()

	assert.Equal(t, StateLoading, state)
	assert.Empty(t, products)
}

func TestCacheRefreshReachesReady(t *testing.T) {
	src := &fakeSource{records: []Record{{ID: "r1", Name: "Remote"}}}
	cache := NewCache(NewResolver(src, testLogger()))

	cache.Refresh(context.Background(), ListOptions{})

	require.Eventually(t, func() bool {
		_, state := cache.Products()
		return state == StateReady
	}, time.Second, 5*time.Millisecond)

	products, _ := cache.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "r1", products[0].ID)
}

func TestCacheRefreshFallsBackOnRemoteFailure(t *testing.T) {
	cache := NewCache(NewResolver(&fakeSource{err: context.DeadlineExceeded}, testLogger()))

	cache.Refresh(context.Background(), ListOptions{})

	require.Eventually(t, func() bool {
		_, state := cache.Products()
		return state == StateFallback
	}, time.Second, 5*time.Millisecond)

	products, _ := cache.Products()
	assert.Equal(t, StaticCatalog(), products)
}

func TestCacheIgnoresStaleRefresh(t *testing.T) {
	src := &gateSource{gate: make(chan struct{})}
	cache := NewCache(NewResolver(src, testLogger()))

	// First refresh hangs on the gate; the second completes immediately.
	cache.Refresh(context.Background(), ListOptions{Category: "slow"})
	cache.Refresh(context.Background(), ListOptions{})

	require.Eventually(t, func() bool {
		products, state := cache.Products()
		return state == StateReady && len(products) == 1 && products[0].ID == "fresh"
	}, time.Second, 5*time.Millisecond)

	// Let the stale fetch finish; its result must be discarded.
	close(src.gate)
	time.Sleep(50 * time.Millisecond)

	products, state := cache.Products()
	assert.Equal(t, StateReady, state)
	require.Len(t, products, 1)
	assert.Equal(t, "fresh", products[0].ID)
}
