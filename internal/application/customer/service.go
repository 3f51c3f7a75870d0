package customer

import (
	"context"
	"fmt"

	"keybuddy/internal/domain/customer"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

// Service orchestrates customer operations.
type Service struct {
	repo   customer.Repository
	logger logger.Interface
}

// NewService creates a customer service.
func NewService(repo customer.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create stores a new customer.
func (s *Service) Create(ctx context.Context, req CustomerRequest, createdBy uint) (*CustomerResponse, error) {
	if req.CustomerNumber != "" {
		exists, err := s.repo.ExistsByCustomerNumber(ctx, req.CustomerNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to check customer number: %w", err)
		}
		if exists {
			return nil, errors.NewConflictError("customer number is already in use")
		}
	}

	entity, err := customer.NewCustomer(req.Company, toAttributes(req), createdBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	return toResponse(entity), nil
}

// Get retrieves a customer by ID.
func (s *Service) Get(ctx context.Context, id uint) (*CustomerResponse, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}
	return toResponse(entity), nil
}

// Update replaces a customer's attributes.
func (s *Service) Update(ctx context.Context, id uint, req CustomerRequest) (*CustomerResponse, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	if err := entity.Update(req.Company, toAttributes(req)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}

	return toResponse(entity), nil
}

// Delete removes a customer.
func (s *Service) Delete(ctx context.Context, id uint) error {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entity == nil {
		return errors.NewNotFoundError("customer not found")
	}
	return s.repo.Delete(ctx, id)
}

// List retrieves a paginated customer list.
func (s *Service) List(ctx context.Context, req ListRequest) (*ListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = constants.DefaultPageSize
	}
	if req.PageSize > constants.MaxPageSize {
		req.PageSize = constants.MaxPageSize
	}

	customers, total, err := s.repo.List(ctx, customer.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
		OrderBy:  req.OrderBy,
		Order:    req.Order,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, toResponse(c))
	}

	return &ListResponse{
		Customers: responses,
		Total:     total,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}, nil
}
