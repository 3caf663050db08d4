package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-auth-service/internal/logger"
	"github.com/sbilibin2017/gw-auth-service/internal/middlewares"
	"github.com/sbilibin2017/gw-auth-service/internal/models"
	"github.com/sbilibin2017/gw-auth-service/internal/services"
)

// ProfileCompleter sets the user's username and optional profile fields.
type ProfileCompleter interface {
	Complete(ctx context.Context, userID uuid.UUID, username, fullName, bio string) error
}

// ProfileGetter reads a user's profile record.
type ProfileGetter interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// CompleteProfileRequest represents the JSON body for profile completion
// swagger:model CompleteProfileRequest
type CompleteProfileRequest struct {
	// Username, globally unique
	// required: true
	// default: alice
	Username string `json:"username"`

	// Full name
	// default: Alice Anderson
	FullName string `json:"full_name"`

	// Bio
	// default: Hello!
	Bio string `json:"bio"`
}

// ProfileResponse represents a profile record
// swagger:model ProfileResponse
type ProfileResponse struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// NewCompleteProfileHandler returns an HTTP handler for the profile
// completion step after first federated login.
// @Summary Complete profile
// @Description Sets the username and optional profile fields of the current user.
// @Tags profile
// @Accept json
// @Produce json
// @Param completeProfileRequest body handlers.CompleteProfileRequest true "Profile completion request"
// @Success 200 {object} handlers.MessageResponse "Profile updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Username already taken"
// @Router /complete_profile [post]
func NewCompleteProfileHandler(svc ProfileCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.IdentityFromContext(r.Context())
		if identity == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Unauthenticated",
			})
			return
		}

		var req CompleteProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if req.Username == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Username is required",
			})
			return
		}

		err := svc.Complete(r.Context(), identity.UserID, req.Username, req.FullName, req.Bio)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Username already taken",
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Profile updated",
		})
	}
}

// NewGetProfileHandler returns an HTTP handler serving the current
// user's profile.
// @Summary Get profile
// @Description Returns the profile of the current user.
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProfileResponse
// @Router /complete_profile [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.IdentityFromContext(r.Context())
		if identity == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Unauthenticated",
			})
			return
		}

		user, err := svc.Profile(r.Context(), identity.UserID)
		if err != nil {
			logger.Log.Errorw("failed to load profile", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := ProfileResponse{Email: user.Email}
		if user.Username != nil {
			resp.Username = *user.Username
		}
		if user.FullName != nil {
			resp.FullName = *user.FullName
		}
		if user.Bio != nil {
			resp.Bio = *user.Bio
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
