package oidc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDiscoveryServer serves a minimal OIDC discovery document whose issuer
// matches the server's own URL.
func newDiscoveryServer(t *testing.T) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		doc := map[string]any{
			"issuer":                 srv.URL,
			"authorization_endpoint": srv.URL + "/authorize",
			"token_endpoint":         srv.URL + "/oauth/token",
			"jwks_uri":               srv.URL + "/.well-known/jwks.json",
			"userinfo_endpoint":      srv.URL + "/userinfo",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc)
	})
	mux.HandleFunc("/.well-known/jwks.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"keys":[]}`))
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_AuthCodeURL(t *testing.T) {
	srv := newDiscoveryServer(t)

	client, err := New(context.Background(), srv.URL, "client-id", "client-secret", "http://localhost:8080/callback")
	require.NoError(t, err)

	raw := client.AuthCodeURL("state-123")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "/authorize", u.Path)
	assert.Equal(t, "state-123", u.Query().Get("state"))
	assert.Equal(t, "client-id", u.Query().Get("client_id"))
	assert.Equal(t, "code", u.Query().Get("response_type"))
	assert.Equal(t, "http://localhost:8080/callback", u.Query().Get("redirect_uri"))
	assert.Contains(t, strings.Fields(u.Query().Get("scope")), "openid")
	assert.Contains(t, strings.Fields(u.Query().Get("scope")), "email")
}

func TestClient_AuthCodeURL_SignupHint(t *testing.T) {
	srv := newDiscoveryServer(t)

	client, err := New(context.Background(), srv.URL, "client-id", "client-secret", "http://localhost:8080/callback")
	require.NoError(t, err)

	u, err := url.Parse(client.AuthCodeURL("state-123", ScreenHintSignup))
	require.NoError(t, err)
	assert.Equal(t, "signup", u.Query().Get("screen_hint"))
}

func TestClient_LogoutURL(t *testing.T) {
	srv := newDiscoveryServer(t)

	client, err := New(context.Background(), srv.URL, "client-id", "client-secret", "http://localhost:8080/callback")
	require.NoError(t, err)

	raw := client.LogoutURL("http://localhost:8080/")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "/v2/logout", u.Path)
	assert.Equal(t, "client-id", u.Query().Get("client_id"))
	assert.Equal(t, "http://localhost:8080/", u.Query().Get("returnTo"))
}

func TestNew_BadIssuer(t *testing.T) {
	_, err := New(context.Background(), "http://127.0.0.1:1/does-not-exist", "id", "secret", "http://localhost/callback")
	assert.Error(t, err)
}
