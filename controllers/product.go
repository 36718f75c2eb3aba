package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"wed-storefront/catalog"
)

// ProductController serves the product browsing surfaces.
type ProductController struct {
	Resolver *catalog.Resolver
	Cache    *catalog.Cache
	Log      logrus.FieldLogger
}

// NewProductController creates a new ProductController.
func NewProductController(resolver *catalog.Resolver, cache *catalog.Cache, log logrus.FieldLogger) *ProductController {
	return &ProductController{
		Resolver: resolver,
		Cache:    cache,
		Log:      log,
	}
}

// GetProducts retrieves the resolved catalog, optionally filtered by
// category and limited. The response is never empty on remote failure;
// the static catalog backs it.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	opts := catalog.ListOptions{
		Category:    r.URL.Query().Get("category"),
		NewestFirst: r.URL.Query().Get("sort") == "newest",
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		opts.Limit = limit
	}

	products := pc.Resolver.Resolve(r.Context(), opts)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// GetHome serves the cached catalog together with its load state, so the
// storefront can distinguish "still loading" from "genuinely no products".
func (pc *ProductController) GetHome(w http.ResponseWriter, r *http.Request) {
	products, state := pc.Cache.Products()

	stateLabel := "ready"
	switch state {
	case catalog.StateLoading:
		stateLabel = "loading"
	case catalog.StateFallback:
		stateLabel = "fallback"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"state":    stateLabel,
		"products": products,
	})
}

// GetProductByID retrieves a single product. An unmatched identifier is a
// normal outcome (stale link) and renders as a not-found state.
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	product, ok := pc.Resolver.ResolveByID(r.Context(), params["id"])
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "product not found"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// GetNewArrivals retrieves the latest products, backfilled from the static
// catalog when the remote returns fewer than requested.
func (pc *ProductController) GetNewArrivals(w http.ResponseWriter, r *http.Request) {
	limit := 8
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n > 0 {
		limit = n
	}

	products := pc.Resolver.NewArrivals(r.Context(), limit)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// SearchProducts filters the catalog by a name substring.
func (pc *ProductController) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products := pc.Resolver.Search(r.Context(), r.URL.Query().Get("q"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}
