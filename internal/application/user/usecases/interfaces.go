package usecases

import (
	"keybuddy/internal/infrastructure/auth"
	"keybuddy/internal/shared/authorization"
)

// PasswordHasher hashes and verifies passwords. Verify must accept
// both bcrypt hashes and the legacy SHA-256 hashes older databases
// carry; IsLegacyHash tells the login flow when to upgrade.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
	IsLegacyHash(hash string) bool
}

// JWTService issues and refreshes signed token pairs.
type JWTService interface {
	Generate(userID uint, username string, role authorization.UserRole) (*auth.TokenPair, error)
	Refresh(refreshToken string) (*auth.TokenPair, error)
}

// TOTPService handles two-factor enrollment and code validation.
type TOTPService interface {
	GenerateEnrollment(username string) (*auth.TOTPEnrollment, error)
	Validate(code, secret string) bool
}

// TokenGenerator produces opaque tokens for email flows. Generate
// returns the plain token for the email link and the hash stored in
// the database.
type TokenGenerator interface {
	Generate() (string, string, error)
	Hash(plainToken string) string
}

// EmailService sends the account lifecycle emails.
type EmailService interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
	SendPasswordChangedEmail(to string) error
}
