package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-auth-service/internal/logger"
	"github.com/sbilibin2017/gw-auth-service/internal/models"
	"github.com/sbilibin2017/gw-auth-service/internal/services"
)

// CallbackCompleter completes a federated login from an authorization code.
type CallbackCompleter interface {
	HandleCallback(ctx context.Context, code string) (*models.UserDB, bool, error)
}

// NewCallbackHandler returns the OIDC redirect-target handler. It checks
// the state nonce, exchanges the code, reconciles the identity with the
// user table, and establishes a session. First-time accounts are sent to
// profile completion.
// @Summary OIDC callback
// @Description Completes the authorization-code exchange and establishes a session.
// @Tags auth
// @Produce json
// @Success 302 "Redirect to / or /complete_profile"
// @Failure 400 {object} handlers.ErrorResponse "Missing code or state mismatch"
// @Failure 502 {object} handlers.ErrorResponse "Provider exchange failed"
// @Router /callback [get]
func NewCallbackHandler(svc CallbackCompleter, sess SessionWriter, provider string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stateCookie, err := r.Cookie(stateCookieName)
		if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid state",
			})
			return
		}

		// State nonce is single-use
		http.SetCookie(w, &http.Cookie{
			Name:     stateCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		code := r.URL.Query().Get("code")
		if code == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Missing authorization code",
			})
			return
		}

		user, created, err := svc.HandleCallback(r.Context(), code)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAuthProvider):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Authentication failed",
				})
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Email already registered",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		identity := models.Identity{
			UserID:   user.UserID,
			Email:    user.Email,
			Provider: provider,
		}
		if user.ExternalID != nil {
			identity.ExternalID = *user.ExternalID
		}

		if err := sess.Login(r.Context(), w, identity); err != nil {
			logger.Log.Errorw("failed to establish session", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if created {
			http.Redirect(w, r, "/complete_profile", http.StatusFound)
			return
		}
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
