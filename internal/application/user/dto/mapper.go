package dto

import "keybuddy/internal/domain/user"

// ToUserResponse maps a domain user to its API representation.
func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:                 u.ID(),
		Username:           u.Username().String(),
		Email:              u.Email().String(),
		FullName:           u.FullName(),
		OrganizationNumber: u.OrganizationNumber(),
		Role:               u.Role().String(),
		Status:             u.Status().String(),
		EmailVerified:      u.EmailVerified(),
		TwoFactorEnabled:   u.TOTPEnabled(),
		LastLoginAt:        u.LastLoginAt(),
		CreatedAt:          u.CreatedAt(),
	}
}
