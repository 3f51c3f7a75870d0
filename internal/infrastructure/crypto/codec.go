package crypto

import (
	"encoding/base64"
	"fmt"

	"github.com/fernet/fernet-go"
)

// Codec encrypts and decrypts individual field values. Ciphertexts are
// Fernet tokens wrapped in an outer url-safe base64 layer, matching
// the format already present in deployed databases.
type Codec struct {
	key *fernet.Key
}

// NewCodec creates a codec from a url-safe base64 key as produced by
// DeriveKey.
func NewCodec(encodedKey string) (*Codec, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("decode encryption key: %w", err)
	}
	return &Codec{key: key}, nil
}

// Encrypt encrypts a plaintext field value.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(plaintext), c.key)
	if err != nil {
		return "", fmt.Errorf("encrypt value: %w", err)
	}
	return base64.URLEncoding.EncodeToString(token), nil
}

// Decrypt decrypts a stored field value. TTL is not enforced; values
// stay valid for the lifetime of the database.
func (c *Codec) Decrypt(ciphertext string) (string, error) {
	token, err := base64.URLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode value: %w", err)
	}
	plaintext := fernet.VerifyAndDecrypt(token, 0, []*fernet.Key{c.key})
	if plaintext == nil {
		return "", fmt.Errorf("decrypt value: invalid token")
	}
	return string(plaintext), nil
}
