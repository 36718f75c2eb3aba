package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"wed-storefront/cart"
	"wed-storefront/catalog"
	"wed-storefront/middleware"
	"wed-storefront/session"
)

// CartController serves the cart surfaces (sidebar, cart bar, checkout
// summary). All handlers operate on the caller's session cart.
type CartController struct {
	Sessions *session.Manager
	Resolver *catalog.Resolver
	Log      logrus.FieldLogger
}

// NewCartController creates a new CartController.
func NewCartController(sessions *session.Manager, resolver *catalog.Resolver, log logrus.FieldLogger) *CartController {
	return &CartController{
		Sessions: sessions,
		Resolver: resolver,
		Log:      log,
	}
}

type cartView struct {
	Items  []cart.Line `json:"items"`
	Totals cart.Totals `json:"totals"`
}

// AddToCart adds one unit of a product to the session cart, snapshotting
// its display fields at add time.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	product, ok := cc.Resolver.ResolveByID(r.Context(), body.ProductID)
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "product not found"})
		return
	}

	c := cc.Sessions.Cart(middleware.SessionID(r))
	c.Add(product)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartView{Items: c.Lines(), Totals: c.Totals()})
}

// RemoveFromCart decrements a line by one unit. Removing a product that is
// not in the cart is a no-op, not an error.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	c := cc.Sessions.Cart(middleware.SessionID(r))
	c.Remove(params["product_id"])

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartView{Items: c.Lines(), Totals: c.Totals()})
}

// RemoveAllOfItem deletes a line regardless of its quantity.
func (cc *CartController) RemoveAllOfItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	c := cc.Sessions.Cart(middleware.SessionID(r))
	c.RemoveAll(params["product_id"])

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartView{Items: c.Lines(), Totals: c.Totals()})
}

// ClearCart empties the session cart.
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	c := cc.Sessions.Cart(middleware.SessionID(r))
	c.Clear()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartView{Items: c.Lines(), Totals: c.Totals()})
}

// GetCart retrieves the session cart with freshly computed totals.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	c := cc.Sessions.Cart(middleware.SessionID(r))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartView{Items: c.Lines(), Totals: c.Totals()})
}
