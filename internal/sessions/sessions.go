package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-auth-service/internal/logger"
	"github.com/sbilibin2017/gw-auth-service/internal/models"
)

// ErrNoSession is returned when the request carries no valid session:
// missing or tampered cookie, or an expired/deleted server-side record.
var ErrNoSession = errors.New("no active session")

const keyPrefix = "session:"

// TokenSigner signs and parses the session-cookie token.
type TokenSigner interface {
	Generate(ctx context.Context, sessionID uuid.UUID) (string, error)
	GetSessionID(ctx context.Context, tokenString string) (uuid.UUID, error)
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Manager stores authenticated identities in Redis and links them to
// clients through a signed session cookie. The cookie carries only a
// session id; Redis expiry is the single source of session lifetime.
type Manager struct {
	rdb        *redis.Client
	signer     TokenSigner
	ttl        time.Duration
	cookieName string
}

// NewManager creates a session Manager.
func NewManager(rdb *redis.Client, signer TokenSigner, cookieName string, ttl time.Duration) *Manager {
	return &Manager{
		rdb:        rdb,
		signer:     signer,
		ttl:        ttl,
		cookieName: cookieName,
	}
}

// Login stores the identity under a fresh session id and sets the signed
// session cookie on the response.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, identity models.Identity) error {
	sessionID := uuid.New()

	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	if err := m.rdb.Set(ctx, keyPrefix+sessionID.String(), data, m.ttl).Err(); err != nil {
		logger.Log.Errorw("failed to store session", "err", err)
		return err
	}

	token, err := m.signer.Generate(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to sign session token", "err", err)
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Current returns the identity associated with the request's session
// cookie, or ErrNoSession.
func (m *Manager) Current(ctx context.Context, r *http.Request) (*models.Identity, error) {
	sessionID, err := m.sessionID(ctx, r)
	if err != nil {
		return nil, ErrNoSession
	}

	data, err := m.rdb.Get(ctx, keyPrefix+sessionID.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		logger.Log.Errorw("failed to load session", "err", err)
		return nil, err
	}

	var identity models.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, err
	}

	return &identity, nil
}

// Logout removes the server-side session record and expires the cookie.
// It returns the identity that was logged out so the caller can redirect
// federated users to the provider's logout endpoint.
func (m *Manager) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.Identity, error) {
	identity, err := m.Current(ctx, r)
	if err != nil {
		return nil, err
	}

	if sessionID, err := m.sessionID(ctx, r); err == nil {
		if err := m.rdb.Del(ctx, keyPrefix+sessionID.String()).Err(); err != nil {
			logger.Log.Errorw("failed to delete session", "err", err)
			return nil, err
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return identity, nil
}

func (m *Manager) sessionID(ctx context.Context, r *http.Request) (uuid.UUID, error) {
	token, err := m.signer.GetTokenFromRequest(ctx, r)
	if err != nil {
		return uuid.Nil, err
	}
	return m.signer.GetSessionID(ctx, token)
}
