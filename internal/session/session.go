// Package session assigns each browser a stable anonymous client id.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName holds the anonymous client id.
const CookieName = "lp_client"

const cookieMaxAge = 365 * 24 * time.Hour

type ctxKey struct{}

// Middleware makes sure every request carries a client id, issuing a
// cookie on first visit.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := fromCookie(r)
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(cookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Secure:   r.TLS != nil,
			})
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// ClientID returns the id set by Middleware, or the cookie value when the
// middleware did not run.
func ClientID(r *http.Request) string {
	if id, ok := r.Context().Value(ctxKey{}).(string); ok {
		return id
	}
	return fromCookie(r)
}

func fromCookie(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}
