package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/kbukum/laracore/errors"
	"github.com/kbukum/laracore/validation"
)

// KeySize is the key length, in bytes, of every supported cipher.
const KeySize = 32

// Algorithm represents supported encryption algorithms.
type Algorithm string

const (
	// AlgorithmChaCha20 is ChaCha20-Poly1305 (default).
	AlgorithmChaCha20 Algorithm = "chacha20-poly1305"

	// AlgorithmAESGCM is AES-256-GCM.
	AlgorithmAESGCM Algorithm = "aes-256-gcm"
)

// Service encrypts and decrypts values with the application key.
type Service struct {
	aead      cipher.AEAD
	algorithm Algorithm
}

// New creates a Service for a raw 32-byte key. An empty algorithm selects
// ChaCha20-Poly1305.
func New(key []byte, alg Algorithm) (*Service, error) {
	if len(key) != KeySize {
		return nil, errors.InvalidConfig("app.key", fmt.Sprintf("key must be %d bytes, got %d", KeySize, len(key)))
	}

	var (
		aead cipher.AEAD
		err  error
	)
	switch alg {
	case "", AlgorithmChaCha20:
		alg = AlgorithmChaCha20
		aead, err = chacha20poly1305.New(key)
	case AlgorithmAESGCM:
		var block cipher.Block
		if block, err = aes.NewCipher(key); err == nil {
			aead, err = cipher.NewGCM(block)
		}
	default:
		return nil, errors.InvalidConfig("app.cipher", fmt.Sprintf("unsupported cipher %q", alg))
	}
	if err != nil {
		return nil, errors.Internal(err)
	}

	return &Service{aead: aead, algorithm: alg}, nil
}

// NewFromAppKey creates a Service from an app.key setting.
func NewFromAppKey(appKey, cipherName string) (*Service, error) {
	if appKey == "" {
		return nil, errors.InvalidConfig("app.key", "no application encryption key has been specified")
	}
	key, err := validation.DecodeAppKey(appKey)
	if err != nil {
		return nil, errors.InvalidConfig("app.key", "key is not valid base64").WithCause(err)
	}
	return New(key, Algorithm(cipherName))
}

// GenerateKey returns a random key in app.key form.
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return validation.AppKeyPrefix + base64.StdEncoding.EncodeToString(key), nil
}

// Algorithm returns the cipher in use.
func (s *Service) Algorithm() Algorithm { return s.algorithm }

// Encrypt encrypts plaintext and returns a base64-encoded result.
func (s *Service) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt decrypts a base64-encoded ciphertext.
func (s *Service) Decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	nonceSize := s.aead.NonceSize()
	if len(data) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, sealed := data[:nonceSize], data[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}

	return string(plaintext), nil
}
