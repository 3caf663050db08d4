package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
// Accounts are created either by local registration or by the first
// successful federated callback; both paths converge on this table.
type UserDB struct {
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`             // Primary key
	Email        string     `json:"email" db:"email"`                 // Unique email
	PasswordHash string     `json:"-" db:"password_hash"`             // bcrypt hash; unusable placeholder for federated-only accounts
	ExternalID   *string    `json:"external_id" db:"external_id"`     // Provider subject id, unique when set
	EncryptedUID []byte     `json:"-" db:"encrypted_uid"`             // AES-GCM ciphertext, never stored in plaintext
	Username     *string    `json:"username" db:"username"`           // Unique when set
	FullName     *string    `json:"full_name" db:"full_name"`         //
	Bio          *string    `json:"bio" db:"bio"`                     //
	IsActive     bool       `json:"is_active" db:"is_active"`         // Reserved for account-disable logic
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`       // Set at creation, immutable
	LastLogin    *time.Time `json:"last_login" db:"last_login"`       // Updated on every federated sign-in
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`       // Last update timestamp
}
