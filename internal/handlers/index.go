package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-auth-service/internal/models"
)

// SessionCurrenter reads the identity bound to the request, if any.
type SessionCurrenter interface {
	Current(ctx context.Context, r *http.Request) (*models.Identity, error)
}

// MessageResponse is a generic success message body
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// default: OK
	Message string `json:"message"`
}

// ErrorResponse is a generic error body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewIndexHandler returns the landing handler.
// @Summary Landing page
// @Description Greets the authenticated user, or points at the login entry point.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Router / [get]
func NewIndexHandler(sess SessionCurrenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := sess.Current(r.Context(), r)
		if err != nil {
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Please log in at /login",
			})
			return
		}

		json.NewEncoder(w).Encode(MessageResponse{
			Message: fmt.Sprintf("Hello %s!", identity.Email),
		})
	}
}
