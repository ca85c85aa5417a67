// Package guard decides which screen a visitor may see
// depending on whether a session token is present.
package guard

import (
	"net/http"

	"github.com/qdm12/geotrack/internal/session"
)

type Guard struct {
	loginURL string
	homeURL  string
}

// New creates a guard redirecting to the login screen at loginURL
// and to the home screen at homeURL.
func New(loginURL, homeURL string) *Guard {
	return &Guard{
		loginURL: loginURL,
		homeURL:  homeURL,
	}
}

func authenticated(r *http.Request) bool {
	tokens := session.FromContext(r.Context())
	return tokens != nil && tokens.Token() != ""
}

// RequireToken redirects visitors without a session token
// to the login screen.
func (g *Guard) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(r) {
			http.Redirect(w, r, g.loginURL, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RedirectAuthenticated redirects visitors with a session token
// to the home screen.
func (g *Guard) RedirectAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if authenticated(r) {
			http.Redirect(w, r, g.homeURL, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NotFound redirects any unmatched path to the login screen.
func (g *Guard) NotFound(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, g.loginURL, http.StatusSeeOther)
}
