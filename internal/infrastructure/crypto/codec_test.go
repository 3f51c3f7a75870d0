package crypto

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCodec_RoundTrip(t *testing.T) {
	salt := []byte("0123456789abcdef")
	codec, err := NewCodec(DeriveKey("master-password", salt))
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "simple value", plaintext: "Huvudnyckel AB"},
		{name: "empty value", plaintext: ""},
		{name: "unicode value", plaintext: "Sjöstadsvägen 3, Västerås"},
		{name: "binary-ish value", plaintext: "line1\nline2\x00tail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ciphertext, err := codec.Encrypt(tt.plaintext)
			if err != nil {
				t.Fatalf("Encrypt() error = %v", err)
			}
			if ciphertext == tt.plaintext && tt.plaintext != "" {
				t.Error("ciphertext should differ from plaintext")
			}

			got, err := codec.Decrypt(ciphertext)
			if err != nil {
				t.Fatalf("Decrypt() error = %v", err)
			}
			if got != tt.plaintext {
				t.Errorf("Decrypt() = %q, want %q", got, tt.plaintext)
			}
		})
	}
}

func TestCodec_WrongKey(t *testing.T) {
	salt := []byte("0123456789abcdef")
	codec, err := NewCodec(DeriveKey("master-password", salt))
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}
	other, err := NewCodec(DeriveKey("another-password", salt))
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}

	ciphertext, err := codec.Encrypt("secret")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	if _, err := other.Decrypt(ciphertext); err == nil {
		t.Error("Decrypt() with the wrong key should fail")
	}
}

func TestCodec_InvalidCiphertext(t *testing.T) {
	codec, err := NewCodec(DeriveKey("master-password", []byte("0123456789abcdef")))
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}

	if _, err := codec.Decrypt("not base64 %%%"); err == nil {
		t.Error("Decrypt() should reject malformed input")
	}
	if _, err := codec.Decrypt("bm90LWEtdG9rZW4="); err == nil {
		t.Error("Decrypt() should reject a non-Fernet token")
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	key1 := DeriveKey("master-password", salt)
	key2 := DeriveKey("master-password", salt)
	if key1 != key2 {
		t.Error("DeriveKey() should be deterministic for the same inputs")
	}

	if DeriveKey("other-password", salt) == key1 {
		t.Error("DeriveKey() should depend on the password")
	}
	if DeriveKey("master-password", []byte("fedcba9876543210")) == key1 {
		t.Error("DeriveKey() should depend on the salt")
	}
}

func TestLoadOrCreateSalt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.salt")

	salt, err := LoadOrCreateSalt(path)
	if err != nil {
		t.Fatalf("LoadOrCreateSalt() error = %v", err)
	}
	if len(salt) != saltSize {
		t.Fatalf("salt length = %d, want %d", len(salt), saltSize)
	}

	again, err := LoadOrCreateSalt(path)
	if err != nil {
		t.Fatalf("LoadOrCreateSalt() second call error = %v", err)
	}
	if string(again) != string(salt) {
		t.Error("LoadOrCreateSalt() should return the persisted salt")
	}
}

func TestLoadOrCreateSalt_InvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.salt")
	if err := os.WriteFile(path, []byte("short"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOrCreateSalt(path); err == nil {
		t.Error("LoadOrCreateSalt() should reject a truncated salt file")
	}
}
