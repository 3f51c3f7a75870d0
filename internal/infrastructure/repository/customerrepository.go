package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"keybuddy/internal/domain/customer"
	"keybuddy/internal/infrastructure/database"
	"keybuddy/internal/infrastructure/persistence/mappers"
	"keybuddy/internal/infrastructure/persistence/models"
	"keybuddy/internal/shared/logger"
)

var allowedCustomerOrderByFields = map[string]bool{
	"id":              true,
	"company":         true,
	"customer_number": true,
	"created_at":      true,
	"updated_at":      true,
}

// CustomerRepository implements the customer repository interface
type CustomerRepository struct {
	db     *gorm.DB
	mapper *mappers.CustomerMapper
	logger logger.Interface
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB, logger logger.Interface) customer.Repository {
	return &CustomerRepository{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
		logger: logger,
	}
}

// Create creates a new customer
func (r *CustomerRepository) Create(ctx context.Context, entity *customer.Customer) error {
	model := r.mapper.ToModel(entity)

	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).Create(model).Error
	})
	if err != nil {
		r.logger.Errorw("failed to create customer", "company", model.Company, "error", err)
		return fmt.Errorf("failed to create customer: %w", err)
	}

	entity.SetID(model.ID)

	r.logger.Infow("customer created", "id", model.ID, "company", model.Company)
	return nil
}

// GetByID retrieves a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get customer by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update updates an existing customer
func (r *CustomerRepository) Update(ctx context.Context, entity *customer.Customer) error {
	model := r.mapper.ToModel(entity)

	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).Save(model).Error
	})
	if err != nil {
		r.logger.Errorw("failed to update customer", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

// Delete removes a customer by ID
func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).Delete(&models.CustomerModel{}, id).Error
	})
	if err != nil {
		r.logger.Errorw("failed to delete customer", "id", id, "error", err)
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	r.logger.Infow("customer deleted", "id", id)
	return nil
}

// List retrieves a paginated list of customers
func (r *CustomerRepository) List(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.CustomerModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"company LIKE ? OR project LIKE ? OR customer_number LIKE ? OR email LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	orderBy := "company"
	if filter.OrderBy != "" && allowedCustomerOrderByFields[filter.OrderBy] {
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

	var customerModels []*models.CustomerModel
	if err := query.Find(&customerModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	entities, err := r.mapper.ToEntities(customerModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// ExistsByCustomerNumber checks if a customer exists with the given customer number
func (r *CustomerRepository) ExistsByCustomerNumber(ctx context.Context, customerNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CustomerModel{}).
		Where("customer_number = ?", customerNumber).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check customer number existence: %w", err)
	}
	return count > 0, nil
}
