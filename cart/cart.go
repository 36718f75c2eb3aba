// Package cart implements the session-scoped shopping cart: an ordered,
// deduplicated collection of product lines with derived totals.
package cart

import (
	"sync"

	"wed-storefront/models"
)

// Line is one product/quantity pairing in the cart. Display fields are
// snapshotted when the product is first added, so later catalog edits do
// not retroactively change a line the customer already has.
type Line struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Totals are the derived cart values, recomputed on every read.
type Totals struct {
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
}

// Cart holds the lines for one session, in first-added order. At most one
// line exists per product identifier and every line has quantity >= 1.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the product into the cart. An existing line for the
// same identifier is incremented; otherwise a new line is appended with the
// product's display fields snapshotted. A zero or missing price is kept as
// 0.00 since catalog data is trusted input.
func (c *Cart) Add(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}

	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Currency:  p.Currency,
		Image:     p.Image(),
		Quantity:  1,
	})
}

// Remove decrements the line for productID by one unit, deleting the line
// when it reaches zero. Removing an absent product is a no-op.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		c.lines[i].Quantity--
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// RemoveAll deletes the line for productID regardless of quantity.
func (c *Cart) RemoveAll(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after a successful checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the cart's lines in first-added order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Totals recomputes the item count and subtotal from the current lines.
// The values are never cached independently of line mutations.
func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	var t Totals
	for _, line := range c.lines {
		t.Count += line.Quantity
		t.Subtotal += line.Price * float64(line.Quantity)
	}
	return t
}
