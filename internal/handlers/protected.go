package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-auth-service/internal/logger"
	"github.com/sbilibin2017/gw-auth-service/internal/middlewares"
)

// UIDRevealer decrypts the confidential uid of a user.
type UIDRevealer interface {
	RevealUID(ctx context.Context, userID uuid.UUID) (string, error)
}

// ProtectedResponse carries the decrypted confidential uid
// swagger:model ProtectedResponse
type ProtectedResponse struct {
	// Message
	// default: Protected page. Your UID is: secret-42
	Message string `json:"message"`

	// Decrypted confidential uid
	// default: secret-42
	UID string `json:"uid"`
}

// NewProtectedHandler returns the gated example resource. It is the only
// place the confidential uid exists in plaintext.
// @Summary Protected resource
// @Description Decrypts and returns the confidential uid of the current user.
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProtectedResponse
// @Router /protected [get]
func NewProtectedHandler(svc UIDRevealer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.IdentityFromContext(r.Context())
		if identity == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Unauthenticated",
			})
			return
		}

		uid, err := svc.RevealUID(r.Context(), identity.UserID)
		if err != nil {
			logger.Log.Errorw("failed to reveal uid", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProtectedResponse{
			Message: fmt.Sprintf("Protected page. Your UID is: %s", uid),
			UID:     uid,
		})
	}
}
