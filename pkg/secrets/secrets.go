// Package secrets encrypts credential material before it is written to
// storage. AES-256-GCM with a random nonce per value; ciphertexts are
// hex-encoded so they fit in plain string attributes.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
)

const keyEnvVar = "SECRETS_ENCRYPTION_KEY"

var (
	ErrMissingKey        = errors.New("encryption key is not configured")
	ErrInvalidKey        = errors.New("encryption key must be 64 hex characters")
	ErrInvalidCiphertext = errors.New("ciphertext is malformed")
)

// Cipher seals and opens individual secret values.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher builds a Cipher from a raw 32-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Cipher{aead: aead}, nil
}

// NewCipherFromEnv reads the hex-encoded key from SECRETS_ENCRYPTION_KEY.
func NewCipherFromEnv() (*Cipher, error) {
	raw := os.Getenv(keyEnvVar)
	if raw == "" {
		return nil, fmt.Errorf("%w: set %s", ErrMissingKey, keyEnvVar)
	}
	key, err := hex.DecodeString(raw)
	if err != nil || len(key) != 32 {
		return nil, ErrInvalidKey
	}
	return NewCipher(key)
}

// Encrypt seals plaintext and returns hex(nonce||ciphertext). Empty input
// passes through so optional attributes stay empty.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt.
func (c *Cipher) Decrypt(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}
	sealed, err := hex.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}
	if len(sealed) < c.aead.NonceSize() {
		return "", ErrInvalidCiphertext
	}
	nonce, ciphertext := sealed[:c.aead.NonceSize()], sealed[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}
	return string(plaintext), nil
}
