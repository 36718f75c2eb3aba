package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wed-storefront/cart"
	"wed-storefront/catalog"
	"wed-storefront/middleware"
	"wed-storefront/recent"
	"wed-storefront/session"
)

// downSource simulates a remote data service outage, so the handlers serve
// the static catalog.
type downSource struct{}

func (downSource) List(ctx context.Context, opts catalog.ListOptions) ([]catalog.Record, error) {
	return nil, errors.New("service unavailable")
}

func (downSource) Get(ctx context.Context, id string) (catalog.Record, error) {
	return catalog.Record{}, errors.New("service unavailable")
}

type storefront struct {
	router *mux.Router
	cookie *http.Cookie
}

func newStorefront(t *testing.T) *storefront {
	t.Helper()

	log := logrus.New()
	log.Out = io.Discard

	resolver := catalog.NewResolver(downSource{}, log)
	sessions := session.NewManager(recent.NewMemoryStore(), log)

	productController := NewProductController(resolver, catalog.NewCache(resolver), log)
	cartController := NewCartController(sessions, resolver, log)
	recentController := NewRecentController(sessions, resolver, log)

	router := mux.NewRouter()
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/{product_id}/all", cartController.RemoveAllOfItem).Methods("DELETE")
	router.HandleFunc("/cart/{product_id}", cartController.RemoveFromCart).Methods("DELETE")
	router.HandleFunc("/recently-viewed", recentController.GetRecentlyViewed).Methods("GET")
	router.HandleFunc("/recently-viewed", recentController.ClearRecentlyViewed).Methods("DELETE")
	router.HandleFunc("/recently-viewed/{product_id}", recentController.RecordView).Methods("POST")
	router.Use(middleware.EnsureSession)

	return &storefront{router: router}
}

// do sends a request, carrying the session cookie across calls.
func (s *storefront) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == "shop_session-id" {
			s.cookie = c
		}
	}
	return w
}

type cartResponse struct {
	Items  []cart.Line `json:"items"`
	Totals cart.Totals `json:"totals"`
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var resp cartResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestProductsServedDuringOutage(t *testing.T) {
	s := newStorefront(t)

	w := s.do(t, "GET", "/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var products []json.RawMessage
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	assert.Len(t, products, 8)
}

func TestProductNotFoundRendersState(t *testing.T) {
	s := newStorefront(t)

	w := s.do(t, "GET", "/products/prod-999", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "product not found", body["error"])
}

func TestCartFlow(t *testing.T) {
	s := newStorefront(t)

	// prod-001 costs 1150.00, prod-003 costs 450.00 in the static catalog.
	s.do(t, "POST", "/cart", `{"product_id":"prod-001"}`)
	s.do(t, "POST", "/cart", `{"product_id":"prod-003"}`)
	w := s.do(t, "POST", "/cart", `{"product_id":"prod-003"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decodeCart(t, w)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, cart.Totals{Count: 3, Subtotal: 2050}, resp.Totals)

	resp = decodeCart(t, s.do(t, "DELETE", "/cart/prod-001", ""))
	assert.Equal(t, cart.Totals{Count: 2, Subtotal: 900}, resp.Totals)

	resp = decodeCart(t, s.do(t, "DELETE", "/cart", ""))
	assert.Empty(t, resp.Items)
	assert.Equal(t, cart.Totals{}, resp.Totals)
}

func TestAddUnknownProductIsNotFound(t *testing.T) {
	s := newStorefront(t)

	w := s.do(t, "POST", "/cart", `{"product_id":"prod-999"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveAllOfItemEmptiesLine(t *testing.T) {
	s := newStorefront(t)

	s.do(t, "POST", "/cart", `{"product_id":"prod-001"}`)
	s.do(t, "POST", "/cart", `{"product_id":"prod-001"}`)
	s.do(t, "POST", "/cart", `{"product_id":"prod-002"}`)

	resp := decodeCart(t, s.do(t, "DELETE", "/cart/prod-001/all", ""))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "prod-002", resp.Items[0].ProductID)
}

func TestCartsAreSessionScoped(t *testing.T) {
	first := newStorefront(t)
	first.do(t, "POST", "/cart", `{"product_id":"prod-001"}`)

	// A second browser gets its own empty cart against the same router.
	second := &storefront{router: first.router}
	resp := decodeCart(t, second.do(t, "GET", "/cart", ""))

	assert.Empty(t, resp.Items)
}

func TestRecentlyViewedFlow(t *testing.T) {
	s := newStorefront(t)

	s.do(t, "POST", "/recently-viewed/prod-002", "")
	s.do(t, "POST", "/recently-viewed/prod-001", "")
	s.do(t, "POST", "/recently-viewed/prod-002", "")

	w := s.do(t, "GET", "/recently-viewed", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	require.Len(t, products, 2)
	assert.Equal(t, "prod-002", products[0].ID)
	assert.Equal(t, "prod-001", products[1].ID)

	w = s.do(t, "DELETE", "/recently-viewed", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, "GET", "/recently-viewed", "")
	var cleared []struct{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&cleared))
	assert.Empty(t, cleared)
}
