package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"wed-storefront/catalog"
	"wed-storefront/middleware"
	"wed-storefront/session"
)

// RecentController serves the recently-viewed surfaces (search overlay).
type RecentController struct {
	Sessions *session.Manager
	Resolver *catalog.Resolver
	Log      logrus.FieldLogger
}

// NewRecentController creates a new RecentController.
func NewRecentController(sessions *session.Manager, resolver *catalog.Resolver, log logrus.FieldLogger) *RecentController {
	return &RecentController{
		Sessions: sessions,
		Resolver: resolver,
		Log:      log,
	}
}

// RecordView notes a product-detail view for the session.
func (rc *RecentController) RecordView(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	tracker := rc.Sessions.Tracker(middleware.SessionID(r))
	if err := tracker.Record(r.Context(), params["product_id"]); err != nil {
		rc.Log.WithError(err).Warn("could not persist recently-viewed entry")
		http.Error(w, "Error recording view", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetRecentlyViewed retrieves the session's recently-viewed products,
// most recent first. Identifiers that no longer resolve are dropped.
func (rc *RecentController) GetRecentlyViewed(w http.ResponseWriter, r *http.Request) {
	tracker := rc.Sessions.Tracker(middleware.SessionID(r))
	products := tracker.Products(r.Context(), rc.Resolver)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// ClearRecentlyViewed empties the session's recently-viewed list.
func (rc *RecentController) ClearRecentlyViewed(w http.ResponseWriter, r *http.Request) {
	tracker := rc.Sessions.Tracker(middleware.SessionID(r))
	if err := tracker.Clear(r.Context()); err != nil {
		rc.Log.WithError(err).Warn("could not clear recently-viewed list")
		http.Error(w, "Error clearing recently viewed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
