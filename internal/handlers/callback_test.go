package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-auth-service/internal/models"
	"github.com/sbilibin2017/gw-auth-service/internal/services"
)

func TestCallbackHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCallbackCompleter(ctrl)
	sess := NewMockSessionWriter(ctrl)
	handler := NewCallbackHandler(svc, sess, "auth0")

	userID := uuid.New()
	externalID := "auth0|abc123"

	tests := []struct {
		name         string
		target       string
		stateCookie  string
		mockSetup    func()
		expectedCode int
		expectedLoc  string
		expectedBody string
	}{
		{
			name:        "existing user is redirected home",
			target:      "/callback?code=c0de&state=st4te",
			stateCookie: "st4te",
			mockSetup: func() {
				svc.EXPECT().
					HandleCallback(gomock.Any(), "c0de").
					Return(&models.UserDB{UserID: userID, Email: "alice@example.com", ExternalID: &externalID}, false, nil)
				sess.EXPECT().
					Login(gomock.Any(), gomock.Any(), models.Identity{
						UserID:     userID,
						Email:      "alice@example.com",
						ExternalID: externalID,
						Provider:   "auth0",
					}).
					Return(nil)
			},
			expectedCode: http.StatusFound,
			expectedLoc:  "/",
		},
		{
			name:        "first login is sent to profile completion",
			target:      "/callback?code=c0de&state=st4te",
			stateCookie: "st4te",
			mockSetup: func() {
				svc.EXPECT().
					HandleCallback(gomock.Any(), "c0de").
					Return(&models.UserDB{UserID: userID, Email: "bob@example.com", ExternalID: &externalID}, true, nil)
				sess.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			expectedCode: http.StatusFound,
			expectedLoc:  "/complete_profile",
		},
		{
			name:         "state mismatch",
			target:       "/callback?code=c0de&state=forged",
			stateCookie:  "st4te",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Invalid state",
		},
		{
			name:         "missing state cookie",
			target:       "/callback?code=c0de&state=st4te",
			stateCookie:  "",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Invalid state",
		},
		{
			name:         "missing code",
			target:       "/callback?state=st4te",
			stateCookie:  "st4te",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Missing authorization code",
		},
		{
			name:        "provider exchange failure",
			target:      "/callback?code=c0de&state=st4te",
			stateCookie: "st4te",
			mockSetup: func() {
				svc.EXPECT().
					HandleCallback(gomock.Any(), "c0de").
					Return(nil, false, services.ErrAuthProvider)
			},
			expectedCode: http.StatusBadGateway,
			expectedBody: "Authentication failed",
		},
		{
			name:        "email collides with a local account",
			target:      "/callback?code=c0de&state=st4te",
			stateCookie: "st4te",
			mockSetup: func() {
				svc.EXPECT().
					HandleCallback(gomock.Any(), "c0de").
					Return(nil, false, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: "Email already registered",
		},
		{
			name:        "internal error",
			target:      "/callback?code=c0de&state=st4te",
			stateCookie: "st4te",
			mockSetup: func() {
				svc.EXPECT().
					HandleCallback(gomock.Any(), "c0de").
					Return(nil, false, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.stateCookie != "" {
				req.AddCookie(&http.Cookie{Name: stateCookieName, Value: tt.stateCookie})
			}
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedLoc != "" {
				assert.Equal(t, tt.expectedLoc, w.Header().Get("Location"))
			}
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestCallbackHandler_ClearsStateCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCallbackCompleter(ctrl)
	sess := NewMockSessionWriter(ctrl)
	handler := NewCallbackHandler(svc, sess, "auth0")

	svc.EXPECT().
		HandleCallback(gomock.Any(), "c0de").
		Return(&models.UserDB{UserID: uuid.New(), Email: "alice@example.com"}, false, nil)
	sess.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/callback?code=c0de&state=st4te", nil)
	req.AddCookie(&http.Cookie{Name: stateCookieName, Value: "st4te"})
	w := httptest.NewRecorder()

	handler(w, req)

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == stateCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}
