package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	cookiePrefix    = "shop_"
	cookieSessionID = cookiePrefix + "session-id"
	cookieMaxAge    = 60 * 60 * 48
)

type ctxKeySessionID struct{}

// EnsureSession guarantees every request carries a session identifier,
// issuing a cookie on first contact and attaching the id to the context.
func EnsureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if c, err := r.Cookie(cookieSessionID); err == nil && c.Value != "" {
			sessionID = c.Value
		} else {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:   cookieSessionID,
				Value:  sessionID,
				MaxAge: cookieMaxAge,
				Path:   "/",
			})
		}

		ctx := context.WithValue(r.Context(), ctxKeySessionID{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session identifier attached by EnsureSession.
func SessionID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKeySessionID{}).(string)
	return id
}
