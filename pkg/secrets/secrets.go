// Package secrets seals and unseals provider access credentials with
// AES-256-GCM. Credentials live encrypted at rest; callers decrypt
// immediately before a provider call and never retain the plaintext.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// Keeper encrypts and decrypts access credentials with a single symmetric key.
type Keeper struct {
	aead cipher.AEAD
}

// NewKeeper creates a Keeper from a hex-encoded 32-byte key.
func NewKeeper(hexKey string) (*Keeper, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode credential key: %w", err)
	}
	if len(key) != 32 {
		return nil, errors.New("credential key must be 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Keeper{aead: aead}, nil
}

// Seal encrypts a plaintext credential. The nonce is prepended to the
// returned ciphertext.
func (k *Keeper) Seal(plaintext string) ([]byte, error) {
	nonce := make([]byte, k.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return k.aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

// Open decrypts a sealed credential.
func (k *Keeper) Open(sealed []byte) (string, error) {
	if len(sealed) < k.aead.NonceSize() {
		return "", errors.New("sealed credential too short")
	}
	nonce, ciphertext := sealed[:k.aead.NonceSize()], sealed[k.aead.NonceSize():]
	plaintext, err := k.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt credential: %w", err)
	}
	return string(plaintext), nil
}
