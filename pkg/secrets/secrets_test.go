package secrets

import (
	"errors"
	"strings"
	"testing"
)

func testCipher(t *testing.T) *Cipher {
	t.Helper()
	c, err := NewCipher([]byte("0123456789abcdef0123456789abcdef"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestCipher_RoundTrip(t *testing.T) {
	c := testCipher(t)

	sealed, err := c.Encrypt("s3cret-api-key")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if sealed == "" || strings.Contains(sealed, "s3cret") {
		t.Fatalf("plaintext leaked into ciphertext: %q", sealed)
	}

	opened, err := c.Decrypt(sealed)
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if opened != "s3cret-api-key" {
		t.Fatalf("round trip mismatch: %q", opened)
	}
}

func TestCipher_EmptyValuePassesThrough(t *testing.T) {
	c := testCipher(t)

	sealed, err := c.Encrypt("")
	if err != nil || sealed != "" {
		t.Fatalf("expected empty passthrough, got %q err=%v", sealed, err)
	}
	opened, err := c.Decrypt("")
	if err != nil || opened != "" {
		t.Fatalf("expected empty passthrough, got %q err=%v", opened, err)
	}
}

func TestCipher_NoncePerValue(t *testing.T) {
	c := testCipher(t)

	a, err := c.Encrypt("same")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	b, err := c.Encrypt("same")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct ciphertexts for repeated plaintext")
	}
}

func TestCipher_MalformedCiphertext(t *testing.T) {
	c := testCipher(t)

	cases := []string{"not-hex", "abcd", ""}
	for _, raw := range cases {
		if raw == "" {
			continue
		}
		if _, err := c.Decrypt(raw); !errors.Is(err, ErrInvalidCiphertext) {
			t.Fatalf("expected ErrInvalidCiphertext for %q, got %v", raw, err)
		}
	}

	sealed, err := c.Encrypt("value")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	tampered := sealed[:len(sealed)-2] + "00"
	if tampered == sealed {
		tampered = sealed[:len(sealed)-2] + "11"
	}
	if _, err := c.Decrypt(tampered); !errors.Is(err, ErrInvalidCiphertext) {
		t.Fatalf("expected ErrInvalidCiphertext for tampered value, got %v", err)
	}
}

func TestNewCipherFromEnv(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		t.Setenv(keyEnvVar, "")
		if _, err := NewCipherFromEnv(); !errors.Is(err, ErrMissingKey) {
			t.Fatalf("expected ErrMissingKey, got %v", err)
		}
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Setenv(keyEnvVar, "abcd")
		if _, err := NewCipherFromEnv(); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey, got %v", err)
		}
	})

	t.Run("valid key", func(t *testing.T) {
		t.Setenv(keyEnvVar, strings.Repeat("ab", 32))
		c, err := NewCipherFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sealed, err := c.Encrypt("x")
		if err != nil {
			t.Fatalf("encrypt failed: %v", err)
		}
		if opened, err := c.Decrypt(sealed); err != nil || opened != "x" {
			t.Fatalf("round trip failed: %q err=%v", opened, err)
		}
	})
}
