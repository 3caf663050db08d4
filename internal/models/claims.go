package models

// Claims holds the identity claims decoded from a verified provider
// ID token after the authorization-code exchange.
type Claims struct {
	Subject  string `json:"sub"`      // Provider's stable unique id for the user
	Email    string `json:"email"`    //
	Nickname string `json:"nickname"` // Seed for the local username
	Name     string `json:"name"`     //
}
