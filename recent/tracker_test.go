package recent

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wed-storefront/models"
)

func newTestTracker(t *testing.T) (*Tracker, *MemoryStore) {
	t.Helper()
	log := logrus.New()
	log.Out = io.Discard
	store := NewMemoryStore()
	return NewTracker(store, "session-1", log), store
}

type fakeLookup struct {
	known map[string]models.Product
}

func (f fakeLookup) ResolveByID(ctx context.Context, id string) (models.Product, bool) {
	p, ok := f.known[id]
	return p, ok
}

func TestRecordPrependsMostRecent(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.Record(ctx, "a"))
	require.NoError(t, tracker.Record(ctx, "b"))
	require.NoError(t, tracker.Record(ctx, "c"))

	assert.Equal(t, []string{"c", "b", "a"}, tracker.IDs(ctx))
}

func TestRecordIsIdempotentUnderRepetition(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.Record(ctx, "a"))
	require.NoError(t, tracker.Record(ctx, "x"))
	require.NoError(t, tracker.Record(ctx, "x"))

	assert.Equal(t, []string{"x", "a"}, tracker.IDs(ctx))
}

func TestRecordMovesRevisitedToFront(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "a"} {
		require.NoError(t, tracker.Record(ctx, id))
	}

	assert.Equal(t, []string{"a", "c", "b"}, tracker.IDs(ctx))
}

func TestRecordEvictsOldestPastBound(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	for i := 1; i <= 11; i++ {
		require.NoError(t, tracker.Record(ctx, fmt.Sprintf("p%02d", i)))
	}

	ids := tracker.IDs(ctx)
	require.Len(t, ids, 10)
	assert.Equal(t, "p11", ids[0])
	assert.Equal(t, "p02", ids[9])
	assert.NotContains(t, ids, "p01")
}

func TestCorruptStorageTreatedAsEmpty(t *testing.T) {
	tracker, store := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "recentlyViewed:session-1", "{not json"))

	assert.Empty(t, tracker.IDs(ctx))

	// Recording over corrupt data starts a fresh list.
	require.NoError(t, tracker.Record(ctx, "a"))
	assert.Equal(t, []string{"a"}, tracker.IDs(ctx))
}

func TestClearEmptiesList(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.Record(ctx, "a"))
	require.NoError(t, tracker.Clear(ctx))

	assert.Empty(t, tracker.IDs(ctx))
}

func TestProductsDropsUnresolvedIDs(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	for _, id := range []string{"deleted", "a", "b"} {
		require.NoError(t, tracker.Record(ctx, id))
	}

	lookup := fakeLookup{known: map[string]models.Product{
		"a": {ID: "a", Name: "Product A"},
		"b": {ID: "b", Name: "Product B"},
	}}

	products := tracker.Products(ctx, lookup)
	require.Len(t, products, 2)
	assert.Equal(t, "b", products[0].ID)
	assert.Equal(t, "a", products[1].ID)
}

func TestTrackersAreIsolatedPerSession(t *testing.T) {
	log := logrus.New()
	log.Out = io.Discard
	store := NewMemoryStore()
	ctx := context.Background()

	first := NewTracker(store, "session-1", log)
	second := NewTracker(store, "session-2", log)

	require.NoError(t, first.Record(ctx, "a"))

	assert.Equal(t, []string{"a"}, first.IDs(ctx))
	assert.Empty(t, second.IDs(ctx))
}
