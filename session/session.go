// Package session owns the per-browser commerce state: one cart and one
// recently-viewed tracker per session identifier, created at first use and
// kept for the session's lifetime.
package session

import (
	"sync"

	"github.com/sirupsen/logrus"

	"wed-storefront/cart"
	"wed-storefront/recent"
)

// Manager is the single owner of session-scoped state. It is created once
// in main and handed to the controllers; there are no package-level
// singletons behind it.
type Manager struct {
	store recent.Store
	log   logrus.FieldLogger

	mu    sync.Mutex
	carts map[string]*cart.Cart
}

// NewManager creates a Manager over the given browser storage backend.
func NewManager(store recent.Store, log logrus.FieldLogger) *Manager {
	return &Manager{
		store: store,
		log:   log,
		carts: make(map[string]*cart.Cart),
	}
}

// Cart returns the cart for sessionID, creating an empty one on first use.
func (m *Manager) Cart(sessionID string) *cart.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.carts[sessionID]
	if !ok {
		c = cart.New()
		m.carts[sessionID] = c
	}
	return c
}

// Tracker returns the recently-viewed tracker for sessionID. Trackers are
// stateless handles over the durable store, so a fresh one per call is fine.
func (m *Manager) Tracker(sessionID string) *recent.Tracker {
	return recent.NewTracker(m.store, sessionID, m.log)
}
