package catalog

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by RemoteSource.Get when no record matches.
var ErrNotFound = errors.New("product not found")

// Record is a raw product row as the remote data service returns it.
// Fields may be missing or empty; the resolver normalizes them.
type Record struct {
	ID           string    `bson:"_id,omitempty"`
	Name         string    `bson:"name"`
	Price        float64   `bson:"price"`
	Currency     string    `bson:"currency"`
	Description  string    `bson:"description"`
	Images       []string  `bson:"images"`
	Sizes        []string  `bson:"sizes"`
	CategoryRef  string    `bson:"category_ref"`
	CategoryName string    `bson:"-"` // joined from the categories lookup
	OutOfStock   bool      `bson:"out_of_stock"`
	CreatedAt    time.Time `bson:"created_at"`
}

// ListOptions narrows a remote listing.
type ListOptions struct {
	NewestFirst bool
	Limit       int
	Category    string
}

// RemoteSource is the query interface over the remote data service.
// Implementations return an error value on failure; they never panic.
type RemoteSource interface {
	List(ctx context.Context, opts ListOptions) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
}
