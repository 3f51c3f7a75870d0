package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/infrastructure/database"
	"keybuddy/internal/infrastructure/persistence/mappers"
	"keybuddy/internal/infrastructure/persistence/models"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

// PermissionRepository persists individual permission grants
type PermissionRepository struct {
	db     *gorm.DB
	mapper *mappers.PermissionMapper
	logger logger.Interface
}

// NewPermissionRepository creates a new permission repository
func NewPermissionRepository(db *gorm.DB, logger logger.Interface) permission.Repository {
	return &PermissionRepository{
		db:     db,
		mapper: mappers.NewPermissionMapper(),
		logger: logger,
	}
}

// Save stores a new grant. Duplicate (user, permission) pairs are a no-op.
func (r *PermissionRepository) Save(ctx context.Context, grant *permission.Grant) error {
	model := r.mapper.ToModel(grant)

	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).Create(model).Error
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			return nil
		}
		r.logger.Errorw("failed to save permission grant",
			"user_id", model.UserID, "permission", model.PermissionType, "error", err)
		return fmt.Errorf("failed to save permission grant: %w", err)
	}

	grant.SetID(model.ID)

	r.logger.Infow("permission granted", "user_id", model.UserID, "permission", model.PermissionType)
	return nil
}

// Delete removes a grant by user and permission
func (r *PermissionRepository) Delete(ctx context.Context, userID uint, perm permission.Permission) error {
	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ? AND permission_type = ?", userID, perm.String()).
			Delete(&models.PermissionModel{}).Error
	})
	if err != nil {
		r.logger.Errorw("failed to delete permission grant",
			"user_id", userID, "permission", perm.String(), "error", err)
		return fmt.Errorf("failed to delete permission grant: %w", err)
	}

	r.logger.Infow("permission revoked", "user_id", userID, "permission", perm.String())
	return nil
}

// ListByUser returns all grants for a user
func (r *PermissionRepository) ListByUser(ctx context.Context, userID uint) ([]*permission.Grant, error) {
	var grantModels []*models.PermissionModel

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&grantModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list permission grants: %w", err)
	}

	return r.mapper.ToEntities(grantModels), nil
}

// DeleteByUser removes all grants for a user
func (r *PermissionRepository) DeleteByUser(ctx context.Context, userID uint) error {
	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Delete(&models.PermissionModel{}).Error
	})
	if err != nil {
		r.logger.Errorw("failed to delete permission grants", "user_id", userID, "error", err)
		return fmt.Errorf("failed to delete permission grants: %w", err)
	}
	return nil
}
