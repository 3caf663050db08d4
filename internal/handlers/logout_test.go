package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-auth-service/internal/models"
	"github.com/sbilibin2017/gw-auth-service/internal/sessions"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sess := NewMockSessionCloser(ctrl)
	client := NewMockLogoutURLBuilder(ctrl)
	handler := NewLogoutHandler(sess, client, "http://localhost:8080/")

	tests := []struct {
		name        string
		mockSetup   func()
		expectedLoc string
	}{
		{
			name: "local identity lands on the index",
			mockSetup: func() {
				sess.EXPECT().
					Logout(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&models.Identity{UserID: uuid.New(), Email: "alice@example.com"}, nil)
			},
			expectedLoc: "/",
		},
		{
			name: "federated identity is bounced through the provider",
			mockSetup: func() {
				sess.EXPECT().
					Logout(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&models.Identity{
						UserID:     uuid.New(),
						Email:      "bob@example.com",
						ExternalID: "auth0|abc123",
						Provider:   "auth0",
					}, nil)
				client.EXPECT().
					LogoutURL("http://localhost:8080/").
					Return("https://provider.example.com/v2/logout?returnTo=http%3A%2F%2Flocalhost%3A8080%2F")
			},
			expectedLoc: "https://provider.example.com/v2/logout?returnTo=http%3A%2F%2Flocalhost%3A8080%2F",
		},
		{
			name: "no session falls back to the index",
			mockSetup: func() {
				sess.EXPECT().
					Logout(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, sessions.ErrNoSession)
			},
			expectedLoc: "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/logout", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tt.expectedLoc, w.Header().Get("Location"))
		})
	}
}
