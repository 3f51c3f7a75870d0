package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"keybuddy/internal/domain/order"
	"keybuddy/internal/infrastructure/database"
	"keybuddy/internal/infrastructure/persistence/mappers"
	"keybuddy/internal/infrastructure/persistence/models"
	"keybuddy/internal/shared/logger"
)

var allowedOrderOrderByFields = map[string]bool{
	"id":             true,
	"key_code":       true,
	"quantity":       true,
	"sequence_start": true,
	"order_date":     true,
	"created_at":     true,
}

// OrderRepository implements the order repository interface
type OrderRepository struct {
	db     *gorm.DB
	mapper *mappers.OrderMapper
	logger logger.Interface
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB, logger logger.Interface) order.Repository {
	return &OrderRepository{
		db:     db,
		mapper: mappers.NewOrderMapper(),
		logger: logger,
	}
}

// Create creates a new order
func (r *OrderRepository) Create(ctx context.Context, entity *order.Order) error {
	model := r.mapper.ToModel(entity)

	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).Create(model).Error
	})
	if err != nil {
		r.logger.Errorw("failed to create order", "key_system_id", model.KeySystemID, "error", err)
		return fmt.Errorf("failed to create order: %w", err)
	}

	entity.SetID(model.ID)

	r.logger.Infow("order created",
		"id", model.ID,
		"key_code", model.KeyCode,
		"sequence_start", model.SequenceStart,
		"sequence_end", model.SequenceEnd,
	)
	return nil
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get order by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update updates an existing order
func (r *OrderRepository) Update(ctx context.Context, entity *order.Order) error {
	model := r.mapper.ToModel(entity)

	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).Save(model).Error
	})
	if err != nil {
		r.logger.Errorw("failed to update order", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update order: %w", err)
	}

	return nil
}

// Delete removes an order by ID
func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).Delete(&models.OrderModel{}, id).Error
	})
	if err != nil {
		r.logger.Errorw("failed to delete order", "id", id, "error", err)
		return fmt.Errorf("failed to delete order: %w", err)
	}

	r.logger.Infow("order deleted", "id", id)
	return nil
}

// List retrieves a paginated list of orders
func (r *OrderRepository) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.OrderModel{})

	if filter.CustomerID > 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.KeySystemID > 0 {
		query = query.Where("key_system_id = ?", filter.KeySystemID)
	}
	if filter.Search != "" {
		query = query.Where("key_code LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	orderBy := "id"
	if filter.OrderBy != "" && allowedOrderOrderByFields[filter.OrderBy] {
		orderBy = filter.OrderBy
	}
	direction := "desc"
	if strings.EqualFold(filter.Order, "asc") {
		direction = "asc"
	}
	query = query.Order(fmt.Sprintf("%s %s", orderBy, direction))

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var orderModels []*models.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	entities, err := r.mapper.ToEntities(orderModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// ListByKeySystem retrieves all orders for a key system, newest first
func (r *OrderRepository) ListByKeySystem(ctx context.Context, keySystemID uint) ([]*order.Order, error) {
	var orderModels []*models.OrderModel

	if err := r.db.WithContext(ctx).
		Where("key_system_id = ?", keySystemID).
		Order("id desc").
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders by key system: %w", err)
	}

	return r.mapper.ToEntities(orderModels)
}
