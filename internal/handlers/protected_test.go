package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-auth-service/internal/middlewares"
	"github.com/sbilibin2017/gw-auth-service/internal/models"
)

func TestProtectedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockUIDRevealer(ctrl)
	handler := NewProtectedHandler(svc)

	userID := uuid.New()
	identity := &models.Identity{UserID: userID, Email: "alice@example.com"}

	t.Run("reveals the uid", func(t *testing.T) {
		svc.EXPECT().
			RevealUID(gomock.Any(), userID).
			Return("secret-42", nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req = req.WithContext(middlewares.ContextWithIdentity(req.Context(), identity))
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp ProtectedResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "secret-42", resp.UID)
		assert.Equal(t, "Protected page. Your UID is: secret-42", resp.Message)
	})

	t.Run("no identity in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("decryption failure", func(t *testing.T) {
		svc.EXPECT().
			RevealUID(gomock.Any(), userID).
			Return("", errors.New("cipher: message authentication failed"))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req = req.WithContext(middlewares.ContextWithIdentity(req.Context(), identity))
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
