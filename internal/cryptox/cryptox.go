package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
)

// ErrInvalidCiphertext is returned when a ciphertext is too short or
// fails authentication during decryption.
var ErrInvalidCiphertext = errors.New("invalid ciphertext")

// Encryptor encrypts and decrypts confidential user fields with AES-GCM.
// The key is process-wide, loaded once from configuration; regenerating it
// would make previously encrypted fields permanently undecryptable.
type Encryptor struct {
	aead cipher.AEAD
}

// New creates an Encryptor. The key must be 16, 24, or 32 bytes
// (AES-128, AES-192, or AES-256).
func New(key []byte) (*Encryptor, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Encryptor{aead: aead}, nil
}

// Encrypt seals the plaintext with a fresh random nonce.
// The nonce is prepended to the returned ciphertext.
func (e *Encryptor) Encrypt(plaintext string) ([]byte, error) {
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return e.aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

// Decrypt opens a nonce-prefixed ciphertext produced by Encrypt.
// A wrong key or tampered data fails authentication rather than
// returning wrong plaintext.
func (e *Encryptor) Decrypt(data []byte) (string, error) {
	if len(data) < e.aead.NonceSize() {
		return "", ErrInvalidCiphertext
	}

	nonce, ciphertext := data[:e.aead.NonceSize()], data[e.aead.NonceSize():]

	plaintext, err := e.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrInvalidCiphertext
	}

	return string(plaintext), nil
}
