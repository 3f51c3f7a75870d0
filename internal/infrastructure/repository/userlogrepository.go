package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"keybuddy/internal/domain/userlog"
	"keybuddy/internal/infrastructure/database"
	"keybuddy/internal/infrastructure/persistence/mappers"
	"keybuddy/internal/infrastructure/persistence/models"
	"keybuddy/internal/shared/logger"
)

// UserLogRepository implements the activity log repository interface
type UserLogRepository struct {
	db     *gorm.DB
	mapper *mappers.UserLogMapper
	logger logger.Interface
}

// NewUserLogRepository creates a new user log repository
func NewUserLogRepository(db *gorm.DB, logger logger.Interface) userlog.Repository {
	return &UserLogRepository{
		db:     db,
		mapper: mappers.NewUserLogMapper(),
		logger: logger,
	}
}

// Create appends an activity log entry
func (r *UserLogRepository) Create(ctx context.Context, entity *userlog.UserLog) error {
	model := r.mapper.ToModel(entity)

	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).Create(model).Error
	})
	if err != nil {
		r.logger.Errorw("failed to create user log",
			"user_id", model.UserID, "activity_type", model.ActivityType, "error", err)
		return fmt.Errorf("failed to create user log: %w", err)
	}

	entity.SetID(model.ID)
	return nil
}

// List retrieves a paginated list of activity logs, newest first
func (r *UserLogRepository) List(ctx context.Context, filter userlog.ListFilter) ([]*userlog.UserLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.UserLogModel{})

	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.ActivityType != "" {
		query = query.Where("activity_type = ?", filter.ActivityType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count user logs: %w", err)
	}

	query = query.Order("timestamp desc")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var logModels []*models.UserLogModel
	if err := query.Find(&logModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list user logs: %w", err)
	}

	return r.mapper.ToEntities(logModels), total, nil
}
