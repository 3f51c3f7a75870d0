package models

import (
	"time"

	"gorm.io/gorm"

	"keybuddy/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID                         uint   `gorm:"primarykey"`
	Username                   string `gorm:"uniqueIndex;not null;size:50"`
	Email                      string `gorm:"uniqueIndex;not null;size:255"`
	FullName                   string `gorm:"size:100"`
	OrgNumber                  string `gorm:"size:20"`
	Role                       string `gorm:"not null;default:user;size:20"`
	Status                     string `gorm:"not null;default:pending;size:20"`
	PasswordHash               string `gorm:"not null;size:255"`
	EmailVerified              bool   `gorm:"default:false"`
	EmailVerificationToken     *string `gorm:"size:255;index:idx_email_verification_token"`
	EmailVerificationExpiresAt *time.Time
	PasswordResetToken         *string `gorm:"size:255;index:idx_password_reset_token"`
	PasswordResetExpiresAt     *time.Time
	LastPasswordChangeAt       *time.Time
	LastLoginAt                *time.Time
	TOTPSecret                 string `gorm:"size:64"`
	TOTPEnabled                bool   `gorm:"default:false"`
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Status == "" {
		u.Status = "pending"
	}
	if u.Role == "" {
		u.Role = "user"
	}
	return nil
}
