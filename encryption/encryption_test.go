package encryption

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kbukum/laracore/errors"
)

func testKey(b byte) []byte { return bytes.Repeat([]byte{b}, KeySize) }

func TestEncryptDecrypt(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmChaCha20, AlgorithmAESGCM} {
		t.Run(string(alg), func(t *testing.T) {
			s, err := New(testKey(1), alg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if s.Algorithm() != alg {
				t.Errorf("expected %s, got %s", alg, s.Algorithm())
			}

			sealed, err := s.Encrypt("session-token")
			if err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}
			again, _ := s.Encrypt("session-token")
			if sealed == again {
				t.Error("expected a fresh nonce per encryption")
			}

			plain, err := s.Decrypt(sealed)
			if err != nil {
				t.Fatalf("Decrypt failed: %v", err)
			}
			if plain != "session-token" {
				t.Errorf("expected plaintext back, got %q", plain)
			}
		})
	}
}

func TestDefaultAlgorithm(t *testing.T) {
	s, err := New(testKey(2), "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Algorithm() != AlgorithmChaCha20 {
		t.Errorf("expected chacha20 by default, got %s", s.Algorithm())
	}
}

func TestDecryptWithWrongKey(t *testing.T) {
	a, _ := New(testKey(1), AlgorithmChaCha20)
	b, _ := New(testKey(2), AlgorithmChaCha20)
	sealed, _ := a.Encrypt("secret")
	if _, err := b.Decrypt(sealed); err == nil {
		t.Error("expected decryption with another key to fail")
	}
}

func TestDecryptMalformed(t *testing.T) {
	s, _ := New(testKey(1), AlgorithmAESGCM)
	if _, err := s.Decrypt("%%%"); err == nil || !strings.Contains(err.Error(), "decode base64") {
		t.Errorf("expected base64 error, got %v", err)
	}
	if _, err := s.Decrypt("AAAA"); err == nil || !strings.Contains(err.Error(), "too short") {
		t.Errorf("expected too short error, got %v", err)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New([]byte("short"), AlgorithmChaCha20); !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG for a short key, got %v", err)
	}
	if _, err := New(testKey(1), "rot13"); !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG for an unknown cipher, got %v", err)
	}
}

func TestNewFromAppKey(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	if !strings.HasPrefix(key, "base64:") {
		t.Fatalf("expected base64: prefix, got %q", key)
	}

	s, err := NewFromAppKey(key, "aes-256-gcm")
	if err != nil {
		t.Fatalf("NewFromAppKey failed: %v", err)
	}
	if s.Algorithm() != AlgorithmAESGCM {
		t.Errorf("unexpected algorithm %s", s.Algorithm())
	}

	if _, err := NewFromAppKey("", ""); !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG for a missing key, got %v", err)
	}
	if _, err := NewFromAppKey("base64:!!", ""); !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG for bad base64, got %v", err)
	}
}
