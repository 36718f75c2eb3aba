// Package recent maintains the bounded, deduplicated, most-recent-first
// list of viewed products, persisted per browser session.
package recent

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"wed-storefront/models"
)

// maxEntries bounds the recently-viewed list; the oldest entry is evicted
// when an eleventh distinct product is recorded.
const maxEntries = 10

const keyPrefix = "recentlyViewed:"

// Lookup resolves a stored product identifier to a displayable product.
// Identifiers that no longer resolve are silently dropped on read.
type Lookup interface {
	ResolveByID(ctx context.Context, id string) (models.Product, bool)
}

// Tracker owns the recently-viewed list for one browser session.
type Tracker struct {
	store Store
	key   string
	log   logrus.FieldLogger
}

// NewTracker creates a Tracker persisting under the session's fixed key.
func NewTracker(store Store, sessionID string, log logrus.FieldLogger) *Tracker {
	return &Tracker{
		store: store,
		key:   keyPrefix + sessionID,
		log:   log,
	}
}

// Record notes that productID was viewed: any existing occurrence is
// removed, the identifier is prepended, and the list is truncated to the
// ten most recent entries before being written back.
func (t *Tracker) Record(ctx context.Context, productID string) error {
	ids := t.IDs(ctx)

	updated := make([]string, 0, len(ids)+1)
	updated = append(updated, productID)
	for _, id := range ids {
		if id != productID {
			updated = append(updated, id)
		}
	}
	if len(updated) > maxEntries {
		updated = updated[:maxEntries]
	}

	encoded, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	return t.store.Set(ctx, t.key, string(encoded))
}

// IDs returns the stored identifiers, most recent first. A missing,
// corrupt, or unreadable value is treated as an empty list.
func (t *Tracker) IDs(ctx context.Context) []string {
	raw, err := t.store.Get(ctx, t.key)
	if err != nil {
		if err != ErrNoValue {
			t.log.WithError(err).Warn("recently-viewed storage unreadable, treating as empty")
		}
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		t.log.WithError(err).Warn("recently-viewed storage corrupt, treating as empty")
		return nil
	}
	return ids
}

// Products resolves the stored identifiers through the catalog lookup,
// dropping any that no longer resolve.
func (t *Tracker) Products(ctx context.Context, lookup Lookup) []models.Product {
	ids := t.IDs(ctx)
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := lookup.ResolveByID(ctx, id); ok {
			products = append(products, p)
		}
	}
	return products
}

// Clear empties the persisted list.
func (t *Tracker) Clear(ctx context.Context) error {
	return t.store.Delete(ctx, t.key)
}
