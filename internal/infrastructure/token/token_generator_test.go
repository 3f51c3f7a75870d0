package token

import (
	"strings"
	"testing"
)

func TestTokenGenerator_Generate(t *testing.T) {
	generator := NewTokenGenerator()

	plainToken, hash, err := generator.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if plainToken == "" {
		t.Error("plainToken should not be empty")
	}

	if len(hash) != 64 {
		t.Errorf("hash length = %d, want 64 (SHA256 hex)", len(hash))
	}

	if plainToken == hash {
		t.Error("plainToken and hash should be different")
	}

	if strings.ContainsAny(plainToken, "+/=") {
		t.Errorf("plainToken = %v, should be URL-safe", plainToken)
	}
}

func TestTokenGenerator_Generate_Uniqueness(t *testing.T) {
	generator := NewTokenGenerator()

	token1, hash1, err1 := generator.Generate()
	if err1 != nil {
		t.Fatalf("Generate() error = %v", err1)
	}

	token2, hash2, err2 := generator.Generate()
	if err2 != nil {
		t.Fatalf("Generate() error = %v", err2)
	}

	if token1 == token2 {
		t.Error("consecutive tokens should differ")
	}
	if hash1 == hash2 {
		t.Error("consecutive hashes should differ")
	}
}

func TestTokenGenerator_Hash(t *testing.T) {
	generator := NewTokenGenerator()

	plainToken, hash, err := generator.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got := generator.Hash(plainToken); got != hash {
		t.Errorf("Hash() = %v, want %v", got, hash)
	}
}

func TestTokenGenerator_Verify(t *testing.T) {
	generator := NewTokenGenerator()

	plainToken, hash, err := generator.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !generator.Verify(plainToken, hash) {
		t.Error("Verify() should accept the matching token")
	}

	if generator.Verify("wrong-token", hash) {
		t.Error("Verify() should reject a non-matching token")
	}
}
