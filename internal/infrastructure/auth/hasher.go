package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// legacyHashPattern matches the unsalted SHA-256 hex digests produced
// by early releases. Accounts still carrying one are upgraded to
// bcrypt on their next successful login.
var legacyHashPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if h.IsLegacyHash(hash) {
		return h.verifyLegacy(password, hash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		// Return a generic error message regardless of the actual cause
		// This prevents timing attacks that could distinguish between:
		// - Invalid password (ErrMismatchedHashAndPassword)
		// - Malformed hash or other internal errors
		return fmt.Errorf("password verification failed")
	}
	return nil
}

// IsLegacyHash reports whether the stored hash uses the old unsalted
// SHA-256 format.
func (h *BcryptPasswordHasher) IsLegacyHash(hash string) bool {
	return legacyHashPattern.MatchString(hash)
}

func (h *BcryptPasswordHasher) verifyLegacy(password, hash string) error {
	sum := sha256.Sum256([]byte(password))
	computed := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) != 1 {
		return fmt.Errorf("password verification failed")
	}
	return nil
}
