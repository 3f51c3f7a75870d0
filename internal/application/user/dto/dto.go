package dto

import "time"

// RegisterRequest carries the self-registration form.
type RegisterRequest struct {
	Username           string `json:"username" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required,min=8"`
	FullName           string `json:"full_name"`
	OrganizationNumber string `json:"organization_number"`
}

// LoginRequest carries login credentials. TwoFactorCode is only set on
// the second step of a two-factor login.
type LoginRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	TwoFactorCode string `json:"two_factor_code"`
	IPAddress     string `json:"-"`
}

// LoginResponse is returned for both completed logins and the
// intermediate two-factor prompt.
type LoginResponse struct {
	RequiresTwoFactor bool          `json:"requires_two_factor"`
	AccessToken       string        `json:"access_token,omitempty"`
	RefreshToken      string        `json:"refresh_token,omitempty"`
	ExpiresIn         int64         `json:"expires_in,omitempty"`
	User              *UserResponse `json:"user,omitempty"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse is returned from a token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// UserResponse is the API representation of a user.
type UserResponse struct {
	ID                 uint       `json:"id"`
	Username           string     `json:"username"`
	Email              string     `json:"email"`
	FullName           string     `json:"full_name"`
	OrganizationNumber string     `json:"organization_number"`
	Role               string     `json:"role"`
	Status             string     `json:"status"`
	EmailVerified      bool       `json:"email_verified"`
	TwoFactorEnabled   bool       `json:"two_factor_enabled"`
	LastLoginAt        *time.Time `json:"last_login_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// CreateUserRequest is the admin form for creating users directly.
type CreateUserRequest struct {
	Username           string `json:"username" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required,min=8"`
	FullName           string `json:"full_name"`
	OrganizationNumber string `json:"organization_number"`
	Role               string `json:"role" binding:"required,userrole"`
}

// UpdateUserRequest updates profile fields.
type UpdateUserRequest struct {
	FullName           string `json:"full_name"`
	OrganizationNumber string `json:"organization_number"`
}

// ChangeRoleRequest changes a user's role.
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,userrole"`
}

// ChangePasswordRequest changes the caller's own password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// RequestPasswordResetRequest starts the reset flow.
type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the reset flow.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// TwoFactorEnrollmentResponse returns the secret and QR code for the
// authenticator app.
type TwoFactorEnrollmentResponse struct {
	Secret string `json:"secret"`
	QRCode string `json:"qr_code"`
}

// ConfirmTwoFactorRequest confirms enrollment with a first valid code.
type ConfirmTwoFactorRequest struct {
	Code string `json:"code" binding:"required"`
}

// ListUsersRequest carries list filters.
type ListUsersRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Username string `form:"username"`
	Email    string `form:"email"`
	Status   string `form:"status"`
	Role     string `form:"role"`
	OrderBy  string `form:"order_by"`
	Order    string `form:"order"`
}

// ListUsersResponse is a paginated user list.
type ListUsersResponse struct {
	Users    []*UserResponse `json:"users"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}
