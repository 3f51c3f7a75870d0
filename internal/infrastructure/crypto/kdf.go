// Package crypto implements the key derivation and field encryption
// used by the encrypted SQLite store. The parameters are fixed by the
// on-disk format of existing installations and must not change.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize      = 16
	keySize       = 32
	kdfIterations = 100000
)

// DeriveKey derives the Fernet key from the master password and salt
// using PBKDF2-HMAC-SHA256. The result is the url-safe base64 form
// Fernet expects.
func DeriveKey(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, kdfIterations, keySize, sha256.New)
	return base64.URLEncoding.EncodeToString(key)
}

// LoadOrCreateSalt reads the salt file next to the database, creating
// it with fresh random bytes on first run.
func LoadOrCreateSalt(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != saltSize {
			return nil, fmt.Errorf("salt file %s has invalid size %d", path, len(data))
		}
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read salt file: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	if err := os.WriteFile(path, salt, 0o600); err != nil {
		return nil, fmt.Errorf("write salt file: %w", err)
	}
	return salt, nil
}
