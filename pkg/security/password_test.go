package security

import (
	"strings"
	"testing"

	"github.com/velora-labs/storefront-backend/pkg/config"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("secret1", config.PasswordConfig{BcryptCost: 4})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" || strings.Contains(hash, "secret1") {
		t.Fatal("hash must not contain the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1", config.PasswordConfig{BcryptCost: 4})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	ok, err := VerifyPassword("secret1", hash)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = VerifyPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("mismatch should not be an error: %v", err)
	}
	if ok {
		t.Fatal("wrong password must not verify")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("whatever", "not-a-hash"); err == nil {
		t.Fatal("expected error for malformed hash")
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	if _, err := HashPassword("", config.PasswordConfig{BcryptCost: 4}); err == nil {
		t.Fatal("expected error for empty password")
	}
}
