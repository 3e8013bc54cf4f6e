package httphandler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

const sessionCookieName = "storefront_session"

type sessionIDKey struct{}

// WithSession reads the session cookie, issuing a fresh session id
// when the request carries none, and makes the id available to the
// handlers through the request context. Only ids this middleware
// could have issued are accepted, anything that is not a uuid is
// treated as absent.
func WithSession(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		var sid string
		if c, err := r.Cookie(sessionCookieName); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				sid = c.Value
			}
		}
		if sid == "" {
			sid = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey{}, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(hf)
}

func sessionID(r *http.Request) string {
	sid, _ := r.Context().Value(sessionIDKey{}).(string)
	return sid
}
