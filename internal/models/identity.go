package models

import "github.com/google/uuid"

// Identity is the minimal authenticated-identity marker kept in the
// session store for the lifetime of a session.
type Identity struct {
	UserID     uuid.UUID `json:"user_id"`               // Local surrogate id
	Email      string    `json:"email"`                 // Account email
	ExternalID string    `json:"external_id,omitempty"` // Provider subject id, empty for local logins
	Provider   string    `json:"provider,omitempty"`    // Provider name, empty for local logins
}

// Federated reports whether the identity came from an external provider.
func (i *Identity) Federated() bool {
	return i.Provider != ""
}
