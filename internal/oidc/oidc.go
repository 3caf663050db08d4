package oidc

import (
	"context"
	"errors"
	"net/url"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/sbilibin2017/gw-auth-service/internal/models"
)

// ScreenHintSignup asks the provider to open its signup screen instead of
// the login screen (Auth0-style screen_hint parameter).
var ScreenHintSignup = oauth2.SetAuthURLParam("screen_hint", "signup")

// Client wraps the external OIDC provider: discovery, authorization-code
// exchange, ID-token verification, and the provider logout endpoint.
type Client struct {
	provider *gooidc.Provider
	verifier *gooidc.IDTokenVerifier
	oauth    oauth2.Config
	issuer   string
	clientID string
}

// New discovers the provider metadata at issuer and builds the client.
func New(ctx context.Context, issuer, clientID, clientSecret, redirectURL string) (*Client, error) {
	provider, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}

	return &Client{
		provider: provider,
		verifier: provider.Verifier(&gooidc.Config{ClientID: clientID}),
		oauth: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{gooidc.ScopeOpenID, "profile", "email"},
		},
		issuer:   issuer,
		clientID: clientID,
	}, nil
}

// AuthCodeURL returns the provider authorization URL for the given state.
func (c *Client) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return c.oauth.AuthCodeURL(state, opts...)
}

// Exchange swaps an authorization code for tokens, verifies the ID token,
// and decodes the identity claims.
func (c *Client) Exchange(ctx context.Context, code string) (*models.Claims, error) {
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, errors.New("no id_token in token response")
	}

	idToken, err := c.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, err
	}

	var claims models.Claims
	if err := idToken.Claims(&claims); err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("id_token has no subject")
	}

	return &claims, nil
}

// LogoutURL builds the provider logout endpoint with a returnTo target so
// the provider's own session is cleared as well.
func (c *Client) LogoutURL(returnTo string) string {
	q := url.Values{}
	q.Set("client_id", c.clientID)
	q.Set("returnTo", returnTo)
	return c.issuer + "/v2/logout?" + q.Encode()
}
