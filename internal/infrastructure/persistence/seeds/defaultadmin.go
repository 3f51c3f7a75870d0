package seeds

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"keybuddy/internal/infrastructure/persistence/models"
	"keybuddy/internal/shared/authorization"
	"keybuddy/internal/shared/logger"
)

const (
	defaultAdminUsername  = "admin"
	defaultAdminPassword  = "admin"
	defaultAdminEmail     = "keybuddyreg@gmail.com"
	defaultAdminFullName  = "Keybuddy"
	defaultAdminOrgNumber = "556737-4730"
)

// PasswordHasher is the subset of the auth hasher the seed needs.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// SeedDefaultAdmin provisions the built-in admin account when no
// admin exists yet. The account is created verified and active so
// first login works before SMTP is configured.
func SeedDefaultAdmin(db *gorm.DB, hasher PasswordHasher, log logger.Interface) error {
	var count int64
	if err := db.Model(&models.UserModel{}).
		Where("role = ?", authorization.RoleAdmin.String()).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admin accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := &models.UserModel{
		Username:      defaultAdminUsername,
		Email:         defaultAdminEmail,
		FullName:      defaultAdminFullName,
		OrgNumber:     defaultAdminOrgNumber,
		Role:          authorization.RoleAdmin.String(),
		Status:        "active",
		PasswordHash:  hash,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	log.Warnw("default admin account provisioned, change the password",
		"username", defaultAdminUsername)
	return nil
}
