package user

import (
	"time"

	vo "keybuddy/internal/domain/user/value_objects"
)

// SetPasswordHash stores a new password hash and records the change time.
func (u *User) SetPasswordHash(hash string) {
	u.passwordHash = hash
	now := time.Now()
	u.lastPasswordChangeAt = &now
	u.touch()
}

// UpgradePasswordHash replaces a legacy hash with a bcrypt hash without
// counting as a password change.
func (u *User) UpgradePasswordHash(hash string) {
	u.passwordHash = hash
	u.touch()
}

// CanLogin checks whether the account state permits a login attempt.
// Administrators bypass the email verification requirement so a fresh
// install is never locked out.
func (u *User) CanLogin() error {
	if u.status == vo.StatusDeleted || u.status == vo.StatusInactive {
		return NewDomainError("account is not active")
	}
	if u.IsAdmin() {
		return nil
	}
	if !u.emailVerified {
		return NewDomainError("email address is not verified")
	}
	return nil
}

// RequiresTwoFactor reports whether a login must present a TOTP code.
// Administrators are exempt.
func (u *User) RequiresTwoFactor() bool {
	return u.totpEnabled && !u.IsAdmin()
}

// RecordLogin updates the last login timestamp.
func (u *User) RecordLogin() {
	now := time.Now()
	u.lastLoginAt = &now
	u.recordEvent(NewUserLoggedInEvent(u.id, u.username.String()))
}

// SetVerificationToken stores a pending email verification token hash.
func (u *User) SetVerificationToken(tokenHash string, expiresAt time.Time) {
	u.emailVerificationToken = &tokenHash
	u.emailVerificationExpiresAt = &expiresAt
	u.touch()
}

// VerifyEmail marks the email as verified and activates a pending
// account. The token match is checked by the caller against the
// stored hash.
func (u *User) VerifyEmail() error {
	if u.emailVerificationExpiresAt != nil && time.Now().After(*u.emailVerificationExpiresAt) {
		return NewDomainError("verification token has expired")
	}
	u.emailVerified = true
	u.emailVerificationToken = nil
	u.emailVerificationExpiresAt = nil
	if u.status == vo.StatusPending {
		u.status = vo.StatusActive
	}
	u.touch()
	return nil
}

// VerifyEmailByAdmin marks the email as verified without a token.
// Used for accounts an administrator creates directly.
func (u *User) VerifyEmailByAdmin() error {
	u.emailVerified = true
	u.emailVerificationToken = nil
	u.emailVerificationExpiresAt = nil
	if u.status == vo.StatusPending {
		u.status = vo.StatusActive
	}
	u.touch()
	return nil
}

// SetPasswordResetToken stores a pending password reset token hash.
func (u *User) SetPasswordResetToken(tokenHash string, expiresAt time.Time) {
	u.passwordResetToken = &tokenHash
	u.passwordResetExpiresAt = &expiresAt
	u.touch()
}

// ResetTokenValid reports whether a stored reset token is still usable.
func (u *User) ResetTokenValid() bool {
	if u.passwordResetToken == nil {
		return false
	}
	if u.passwordResetExpiresAt != nil && time.Now().After(*u.passwordResetExpiresAt) {
		return false
	}
	return true
}

// ClearPasswordResetToken removes a consumed or invalidated reset token.
func (u *User) ClearPasswordResetToken() {
	u.passwordResetToken = nil
	u.passwordResetExpiresAt = nil
	u.touch()
}

// EnableTwoFactor stores the TOTP secret and switches 2FA on.
func (u *User) EnableTwoFactor(secret string) error {
	if secret == "" {
		return NewDomainError("totp secret cannot be empty")
	}
	u.totpSecret = secret
	u.totpEnabled = true
	u.touch()
	return nil
}

// SetTwoFactorSecret stores a generated secret before the user has
// confirmed their first code.
func (u *User) SetTwoFactorSecret(secret string) {
	u.totpSecret = secret
	u.touch()
}

// DisableTwoFactor switches 2FA off and discards the secret.
func (u *User) DisableTwoFactor() {
	u.totpSecret = ""
	u.totpEnabled = false
	u.touch()
}
