package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"keybuddy/internal/domain/keysystem"
	"keybuddy/internal/infrastructure/database"
	"keybuddy/internal/infrastructure/persistence/mappers"
	"keybuddy/internal/infrastructure/persistence/models"
	"keybuddy/internal/shared/logger"
)

var allowedKeySystemOrderByFields = map[string]bool{
	"id":            true,
	"key_code":      true,
	"system_number": true,
	"billing_plan":  true,
	"created_at":    true,
	"updated_at":    true,
}

// KeySystemRepository implements the key system repository interface
type KeySystemRepository struct {
	db     *gorm.DB
	mapper *mappers.KeySystemMapper
	logger logger.Interface
}

// NewKeySystemRepository creates a new key system repository
func NewKeySystemRepository(db *gorm.DB, logger logger.Interface) keysystem.Repository {
	return &KeySystemRepository{
		db:     db,
		mapper: mappers.NewKeySystemMapper(),
		logger: logger,
	}
}

// Create creates a new key system
func (r *KeySystemRepository) Create(ctx context.Context, entity *keysystem.KeySystem) error {
	model := r.mapper.ToModel(entity)

	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).Create(model).Error
	})
	if err != nil {
		r.logger.Errorw("failed to create key system", "customer_id", model.CustomerID, "error", err)
		return fmt.Errorf("failed to create key system: %w", err)
	}

	entity.SetID(model.ID)

	r.logger.Infow("key system created", "id", model.ID, "customer_id", model.CustomerID)
	return nil
}

// GetByID retrieves a key system by ID
func (r *KeySystemRepository) GetByID(ctx context.Context, id uint) (*keysystem.KeySystem, error) {
	var model models.KeySystemModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get key system by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get key system: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update updates an existing key system
func (r *KeySystemRepository) Update(ctx context.Context, entity *keysystem.KeySystem) error {
	model := r.mapper.ToModel(entity)

	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).Save(model).Error
	})
	if err != nil {
		r.logger.Errorw("failed to update key system", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update key system: %w", err)
	}

	return nil
}

// Delete removes a key system by ID
func (r *KeySystemRepository) Delete(ctx context.Context, id uint) error {
	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).Delete(&models.KeySystemModel{}, id).Error
	})
	if err != nil {
		r.logger.Errorw("failed to delete key system", "id", id, "error", err)
		return fmt.Errorf("failed to delete key system: %w", err)
	}

	r.logger.Infow("key system deleted", "id", id)
	return nil
}

// List retrieves a paginated list of key systems
func (r *KeySystemRepository) List(ctx context.Context, filter keysystem.ListFilter) ([]*keysystem.KeySystem, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.KeySystemModel{})

	if filter.CustomerID > 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"key_code LIKE ? OR key_code2 LIKE ? OR system_number LIKE ? OR series_id LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count key systems: %w", err)
	}

	orderBy := "id"
	if filter.OrderBy != "" && allowedKeySystemOrderByFields[filter.OrderBy] {
		orderBy = filter.OrderBy
	}
	order := "asc"
	if strings.EqualFold(filter.Order, "desc") {
		order = "desc"
	}
	query = query.Order(fmt.Sprintf("%s %s", orderBy, order))

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var ksModels []*models.KeySystemModel
	if err := query.Find(&ksModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list key systems: %w", err)
	}

	entities, err := r.mapper.ToEntities(ksModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// ListByCustomer retrieves all key systems for a customer
func (r *KeySystemRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*keysystem.KeySystem, error) {
	var ksModels []*models.KeySystemModel

	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id asc").
		Find(&ksModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list key systems by customer: %w", err)
	}

	return r.mapper.ToEntities(ksModels)
}

// UpdateSequenceNumber sets last_sequence_number directly
func (r *KeySystemRepository) UpdateSequenceNumber(ctx context.Context, id uint, sequenceEnd int) error {
	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).Model(&models.KeySystemModel{}).
			Where("id = ?", id).
			Update("last_sequence_number", sequenceEnd).Error
	})
	if err != nil {
		r.logger.Errorw("failed to update sequence number", "id", id, "sequence_end", sequenceEnd, "error", err)
		return fmt.Errorf("failed to update sequence number: %w", err)
	}

	return nil
}
