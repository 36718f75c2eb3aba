package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"wed-storefront/models"
)

const (
	placeholderImage    = "/img/placeholder.jpg"
	uncategorizedLabel  = "Uncategorized"
	defaultCurrency     = "EGP"
	remoteFetchTimeout  = 5 * time.Second
	defaultArrivalLimit = 8
)

// Resolver reconciles the remote data service with the static fallback
// catalog. Callers always receive a usable product list; remote failures
// are logged and absorbed, never propagated.
type Resolver struct {
	source RemoteSource
	log    logrus.FieldLogger
}

// NewResolver creates a Resolver over the given remote source.
func NewResolver(source RemoteSource, log logrus.FieldLogger) *Resolver {
	return &Resolver{
		source: source,
		log:    log,
	}
}

// Resolve fetches the catalog from the remote source and normalizes it.
// On any remote failure, or when the remote returns no products, the static
// catalog is substituted so the storefront is never empty.
func (r *Resolver) Resolve(ctx context.Context, opts ListOptions) []models.Product {
	products, _ := r.resolve(ctx, opts)
	return products
}

// resolve reports whether the static catalog was substituted.
func (r *Resolver) resolve(ctx context.Context, opts ListOptions) ([]models.Product, bool) {
	products, err := r.fetchRemote(ctx, opts)
	if err != nil {
		r.log.WithError(err).Warn("remote catalog unavailable, serving static catalog")
		return r.staticSubset(opts), true
	}
	if len(products) == 0 {
		return r.staticSubset(opts), true
	}
	return products, false
}

// NewArrivals returns up to limit products, remote entries first and static
// entries backfilling the remainder. The two identifier schemes are disjoint,
// so no deduplication across sources is attempted.
func (r *Resolver) NewArrivals(ctx context.Context, limit int) []models.Product {
	if limit <= 0 {
		limit = defaultArrivalLimit
	}

	remote, err := r.fetchRemote(ctx, ListOptions{NewestFirst: true, Limit: limit})
	if err != nil {
		r.log.WithError(err).Warn("remote catalog unavailable for new arrivals")
		remote = nil
	}

	merged := append(remote, StaticCatalog()...)
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// ResolveByID looks up a single product, trying the remote source first and
// the static catalog second. A false return is the expected outcome for a
// stale link and must render as a not-found state, not an error.
func (r *Resolver) ResolveByID(ctx context.Context, id string) (models.Product, bool) {
	ctx, cancel := context.WithTimeout(ctx, remoteFetchTimeout)
	defer cancel()

	rec, err := r.source.Get(ctx, id)
	if err == nil {
		return normalize(rec), true
	}
	if err != ErrNotFound {
		r.log.WithError(err).WithField("product_id", id).Warn("remote product lookup failed")
	}

	for _, p := range staticProducts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Search filters the resolved catalog by a case-insensitive name substring.
func (r *Resolver) Search(ctx context.Context, query string) []models.Product {
	all := r.Resolve(ctx, ListOptions{})
	if strings.TrimSpace(query) == "" {
		return all
	}

	q := strings.ToLower(query)
	matched := make([]models.Product, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (r *Resolver) fetchRemote(ctx context.Context, opts ListOptions) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, remoteFetchTimeout)
	defer cancel()

	records, err := r.source.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, normalize(rec))
	}
	return products, nil
}

func (r *Resolver) staticSubset(opts ListOptions) []models.Product {
	all := StaticCatalog()
	if opts.Category != "" {
		filtered := all[:0]
		for _, p := range all {
			if p.Category == opts.Category {
				filtered = append(filtered, p)
			}
		}
		all = filtered
	}
	if opts.Limit > 0 && len(all) > opts.Limit {
		all = all[:opts.Limit]
	}
	return all
}

// normalize converts a raw remote record into the canonical Product shape:
// missing images become a single placeholder, a missing category becomes
// "Uncategorized", and availability defaults to in stock.
func normalize(rec Record) models.Product {
	images := rec.Images
	if len(images) == 0 {
		images = []string{placeholderImage}
	}

	category := rec.CategoryName
	if category == "" {
		category = uncategorizedLabel
	}

	currency := rec.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return models.Product{
		ID:          rec.ID,
		Name:        rec.Name,
		Price:       rec.Price,
		Currency:    currency,
		Description: rec.Description,
		Images:      images,
		Sizes:       rec.Sizes,
		Category:    category,
		InStock:     !rec.OutOfStock,
	}
}
