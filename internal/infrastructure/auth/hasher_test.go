package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash = %v, want bcrypt format", hash)
	}

	if err := hasher.Verify("correct horse battery staple", hash); err != nil {
		t.Errorf("Verify() with correct password error = %v", err)
	}
	if err := hasher.Verify("wrong password", hash); err == nil {
		t.Error("Verify() with wrong password should fail")
	}
}

func TestBcryptPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptPasswordHasher(99)

	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if err := hasher.Verify("password123", hash); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}

func TestBcryptPasswordHasher_LegacyHash(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	sum := sha256.Sum256([]byte("gammalt lösenord"))
	legacy := hex.EncodeToString(sum[:])

	if !hasher.IsLegacyHash(legacy) {
		t.Error("IsLegacyHash() should recognize an unsalted SHA-256 digest")
	}

	if err := hasher.Verify("gammalt lösenord", legacy); err != nil {
		t.Errorf("Verify() against legacy hash error = %v", err)
	}
	if err := hasher.Verify("fel lösenord", legacy); err == nil {
		t.Error("Verify() against legacy hash with wrong password should fail")
	}
}

func TestBcryptPasswordHasher_IsLegacyHash(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	tests := []struct {
		name string
		hash string
		want bool
	}{
		{name: "sha256 digest", hash: strings.Repeat("ab", 32), want: true},
		{name: "bcrypt hash", hash: "$2a$12$abcdefghijklmnopqrstuvwxyz012345678901234567890123456", want: false},
		{name: "uppercase hex", hash: strings.Repeat("AB", 32), want: false},
		{name: "too short", hash: strings.Repeat("ab", 16), want: false},
		{name: "empty", hash: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasher.IsLegacyHash(tt.hash); got != tt.want {
				t.Errorf("IsLegacyHash(%q) = %v, want %v", tt.hash, got, tt.want)
			}
		})
	}
}
