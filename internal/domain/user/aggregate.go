package user

import (
	"fmt"
	"time"

	"keybuddy/internal/shared/authorization"
	vo "keybuddy/internal/domain/user/value_objects"
)

// User represents the user aggregate root (pure domain model without persistence concerns)
type User struct {
	id                 uint
	username           *vo.Username
	email              *vo.Email
	fullName           string
	organizationNumber string
	role               authorization.UserRole
	status             vo.Status
	createdAt          time.Time
	updatedAt          time.Time
	events             []interface{}

	passwordHash               string
	emailVerified              bool
	emailVerificationToken     *string
	emailVerificationExpiresAt *time.Time
	passwordResetToken         *string
	passwordResetExpiresAt     *time.Time
	lastPasswordChangeAt       *time.Time
	lastLoginAt                *time.Time

	totpSecret  string
	totpEnabled bool
}

// NewUser creates a new user aggregate with initial values
func NewUser(username *vo.Username, email *vo.Email, fullName string, role authorization.UserRole) (*User, error) {
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	user := &User{
		username:  username,
		email:     email,
		fullName:  fullName,
		role:      role,
		status:    vo.StatusPending,
		createdAt: now,
		updatedAt: now,
		events:    []interface{}{},
	}

	user.recordEvent(NewUserCreatedEvent(
		user.id,
		username.String(),
		email.String(),
		role.String(),
	))

	return user, nil
}

// AuthData carries the persistence-side authentication fields.
type AuthData struct {
	PasswordHash               string
	EmailVerified              bool
	EmailVerificationToken     *string
	EmailVerificationExpiresAt *time.Time
	PasswordResetToken         *string
	PasswordResetExpiresAt     *time.Time
	LastPasswordChangeAt       *time.Time
	LastLoginAt                *time.Time
	TOTPSecret                 string
	TOTPEnabled                bool
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(
	id uint,
	username *vo.Username,
	email *vo.Email,
	fullName string,
	organizationNumber string,
	role authorization.UserRole,
	status vo.Status,
	createdAt, updatedAt time.Time,
	authData *AuthData,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	u := &User{
		id:                 id,
		username:           username,
		email:              email,
		fullName:           fullName,
		organizationNumber: organizationNumber,
		role:               role,
		status:             status,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		events:             []interface{}{},
	}

	if authData != nil {
		u.passwordHash = authData.PasswordHash
		u.emailVerified = authData.EmailVerified
		u.emailVerificationToken = authData.EmailVerificationToken
		u.emailVerificationExpiresAt = authData.EmailVerificationExpiresAt
		u.passwordResetToken = authData.PasswordResetToken
		u.passwordResetExpiresAt = authData.PasswordResetExpiresAt
		u.lastPasswordChangeAt = authData.LastPasswordChangeAt
		u.lastLoginAt = authData.LastLoginAt
		u.totpSecret = authData.TOTPSecret
		u.totpEnabled = authData.TOTPEnabled
	}

	return u, nil
}

// Getters

func (u *User) ID() uint                               { return u.id }
func (u *User) Username() *vo.Username                 { return u.username }
func (u *User) Email() *vo.Email                       { return u.email }
func (u *User) FullName() string                       { return u.fullName }
func (u *User) OrganizationNumber() string             { return u.organizationNumber }
func (u *User) Role() authorization.UserRole           { return u.role }
func (u *User) Status() vo.Status                      { return u.status }
func (u *User) CreatedAt() time.Time                   { return u.createdAt }
func (u *User) UpdatedAt() time.Time                   { return u.updatedAt }
func (u *User) PasswordHash() string                   { return u.passwordHash }
func (u *User) EmailVerified() bool                    { return u.emailVerified }
func (u *User) EmailVerificationToken() *string        { return u.emailVerificationToken }
func (u *User) EmailVerificationExpiresAt() *time.Time { return u.emailVerificationExpiresAt }
func (u *User) PasswordResetToken() *string            { return u.passwordResetToken }
func (u *User) PasswordResetExpiresAt() *time.Time     { return u.passwordResetExpiresAt }
func (u *User) LastPasswordChangeAt() *time.Time       { return u.lastPasswordChangeAt }
func (u *User) LastLoginAt() *time.Time                { return u.lastLoginAt }
func (u *User) TOTPSecret() string                     { return u.totpSecret }
func (u *User) TOTPEnabled() bool                      { return u.totpEnabled }

// IsAdmin reports whether the user has the administrator role.
func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

// SetID assigns the persistence-generated ID after creation.
func (u *User) SetID(id uint) {
	u.id = id
}

// UpdateProfile changes the profile fields.
func (u *User) UpdateProfile(fullName, organizationNumber string) {
	u.fullName = fullName
	u.organizationNumber = organizationNumber
	u.touch()
}

// ChangeRole assigns a new role. A user cannot lose the last admin
// role through this method; that rule is enforced in the application
// layer where the full user list is visible.
func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	if u.role == role {
		return nil
	}
	old := u.role
	u.role = role
	u.touch()
	u.recordEvent(NewUserRoleChangedEvent(u.id, old.String(), role.String()))
	return nil
}

// ChangeStatus transitions the account status.
func (u *User) ChangeStatus(target vo.Status) error {
	if !u.status.CanTransitionTo(target) {
		return NewDomainError(fmt.Sprintf("cannot change status from %s to %s", u.status, target))
	}
	u.status = target
	u.touch()
	return nil
}

func (u *User) touch() {
	u.updatedAt = time.Now()
}

func (u *User) recordEvent(event interface{}) {
	u.events = append(u.events, event)
}

// Events returns and clears the recorded domain events.
func (u *User) Events() []interface{} {
	events := u.events
	u.events = []interface{}{}
	return events
}
