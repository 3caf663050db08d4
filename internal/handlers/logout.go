package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-auth-service/internal/logger"
	"github.com/sbilibin2017/gw-auth-service/internal/models"
	"github.com/sbilibin2017/gw-auth-service/internal/sessions"
)

// SessionCloser removes the session and reports which identity it belonged to.
type SessionCloser interface {
	Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.Identity, error)
}

// LogoutURLBuilder builds the provider logout URL with a return target.
type LogoutURLBuilder interface {
	LogoutURL(returnTo string) string
}

// NewLogoutHandler returns an HTTP handler that clears the session.
// Federated identities are additionally bounced through the provider's
// logout endpoint so the provider session is cleared too.
// @Summary Logout
// @Description Clears the session; federated identities are redirected to the provider logout endpoint.
// @Tags auth
// @Success 302 "Redirect to / or the provider logout URL"
// @Router /logout [get]
func NewLogoutHandler(sess SessionCloser, client LogoutURLBuilder, returnTo string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := sess.Logout(r.Context(), w, r)
		if err != nil {
			if !errors.Is(err, sessions.ErrNoSession) {
				logger.Log.Errorw("failed to clear session", "err", err)
			}
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		if identity.Federated() {
			http.Redirect(w, r, client.LogoutURL(returnTo), http.StatusFound)
			return
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}
