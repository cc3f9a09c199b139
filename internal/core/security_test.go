// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("hash = %q, want argon2id encoding", hash)
	}

	ok, err := VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if !ok {
		t.Error("VerifyPassword() = false for correct password")
	}

	ok, err = VerifyPassword("wrong password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if ok {
		t.Error("VerifyPassword() = true for wrong password")
	}
}

func TestHashPasswordSalts(t *testing.T) {
	first, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password are identical, salt missing")
	}
}

func TestVerifyPasswordTimingSafeNilHash(t *testing.T) {
	ok, _, err := VerifyPasswordTimingSafe("anything", nil)
	if err != nil {
		t.Fatalf("VerifyPasswordTimingSafe() error = %v", err)
	}
	if ok {
		t.Error("VerifyPasswordTimingSafe(nil hash) = true, want false")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("pw", "not-a-hash"); err == nil {
		t.Error("VerifyPassword() error = nil for malformed hash")
	}
}

func TestTokenHashRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	hash := HashToken(token)
	if hash == token {
		t.Error("HashToken() returned the token unchanged")
	}

	if !CompareTokenHash(token, hash) {
		t.Error("CompareTokenHash() = false for matching token")
	}
	if CompareTokenHash("other-token", hash) {
		t.Error("CompareTokenHash() = true for different token")
	}
}
