package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Key type for context
type contextKey string

const SessionContextKey = contextKey("session")

const sessionCookieName = "pos_session"

// SessionMiddleware assigns each browser a stable session id so its cart can be
// found again on the next request, and attaches the id to the request context
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
			id = c.Value
		} else {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), SessionContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session id attached by SessionMiddleware
func SessionID(r *http.Request) string {
	id, _ := r.Context().Value(SessionContextKey).(string)
	return id
}
