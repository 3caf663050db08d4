package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// stateCookieName holds the anti-CSRF state nonce across the provider
// redirect round trip.
const stateCookieName = "oauth_state"

const stateCookieMaxAge = 600

// AuthURLBuilder builds the provider authorization URL.
type AuthURLBuilder interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
}

// NewFederatedRedirectHandler returns an HTTP handler that starts a
// federated login by redirecting to the provider's authorization endpoint.
// Extra options (such as a signup screen hint) are passed through to the
// authorization URL.
// @Summary Federated login entry point
// @Description Redirects to the external provider's authorization endpoint.
// @Tags auth
// @Success 302 "Redirect to the provider"
// @Router /login [get]
func NewFederatedRedirectHandler(client AuthURLBuilder, opts ...oauth2.AuthCodeOption) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := uuid.NewString()

		http.SetCookie(w, &http.Cookie{
			Name:     stateCookieName,
			Value:    state,
			Path:     "/",
			MaxAge:   stateCookieMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, client.AuthCodeURL(state, opts...), http.StatusFound)
	}
}
