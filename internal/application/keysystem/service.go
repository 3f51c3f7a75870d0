package keysystem

import (
	"context"
	"fmt"
	"time"

	"keybuddy/internal/domain/customer"
	"keybuddy/internal/domain/keysystem"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

// Service orchestrates key system operations, including the billing
// state machine for recurring plans.
type Service struct {
	repo         keysystem.Repository
	catalogRepo  keysystem.CatalogRepository
	customerRepo customer.Repository
	logger       logger.Interface
}

// NewService creates a key system service.
func NewService(
	repo keysystem.Repository,
	catalogRepo keysystem.CatalogRepository,
	customerRepo customer.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		repo:         repo,
		catalogRepo:  catalogRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create stores a new key system for a customer.
func (s *Service) Create(ctx context.Context, req KeySystemRequest) (*KeySystemResponse, error) {
	owner, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	if owner == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	entity, err := keysystem.NewKeySystem(req.CustomerID, req.KeyCode, toAttributes(req))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	return toResponse(entity), nil
}

// Get retrieves a key system. Recurring plans whose paid period has
// lapsed are reverted to unpaid before being returned.
func (s *Service) Get(ctx context.Context, id uint) (*KeySystemResponse, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("key system not found")
	}

	if err := s.revertIfExpired(ctx, entity); err != nil {
		return nil, err
	}

	return toResponse(entity), nil
}

// Update replaces a key system's attributes.
func (s *Service) Update(ctx context.Context, id uint, req KeySystemRequest) (*KeySystemResponse, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("key system not found")
	}

	if err := entity.Update(req.KeyCode, toAttributes(req)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}

	return toResponse(entity), nil
}

// Delete removes a key system.
func (s *Service) Delete(ctx context.Context, id uint) error {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entity == nil {
		return errors.NewNotFoundError("key system not found")
	}
	return s.repo.Delete(ctx, id)
}

// List retrieves a paginated key system list.
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

	items, total, err := s.repo.List(ctx, keysystem.ListFilter{
		Page:       req.Page,
		PageSize:   req.PageSize,
		CustomerID: req.CustomerID,
		Search:     req.Search,
		OrderBy:    req.OrderBy,
		Order:      req.Order,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]*KeySystemResponse, 0, len(items))
	for _, ks := range items {
		responses = append(responses, toResponse(ks))
	}

	return &ListResponse{
		KeySystems: responses,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}, nil
}

// ListByCustomer returns every key system owned by a customer.
func (s *Service) ListByCustomer(ctx context.Context, customerID uint) ([]*KeySystemResponse, error) {
	items, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	responses := make([]*KeySystemResponse, 0, len(items))
	for _, ks := range items {
		responses = append(responses, toResponse(ks))
	}
	return responses, nil
}

// SetPaid marks a key system paid as of now. For recurring plans this
// starts a new paid period.
func (s *Service) SetPaid(ctx context.Context, id uint) (*KeySystemResponse, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("key system not found")
	}

	entity.MarkPaid(time.Now())
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}

	s.logger.Infow("key system marked paid", "key_system_id", id)
	return toResponse(entity), nil
}

// SetUnpaid clears the paid state.
func (s *Service) SetUnpaid(ctx context.Context, id uint) (*KeySystemResponse, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("key system not found")
	}

	entity.MarkUnpaid()
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}

	return toResponse(entity), nil
}

// RecordInvoice counts an invoice against the key system.
func (s *Service) RecordInvoice(ctx context.Context, id uint) (*KeySystemResponse, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("key system not found")
	}

	entity.RecordInvoice(time.Now())
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}

	return toResponse(entity), nil
}

// Catalog returns the primary fabrikat/koncept catalog.
func (s *Service) Catalog(ctx context.Context) ([]CatalogEntryResponse, error) {
	return s.catalog(s.catalogRepo.List, ctx)
}

// CatalogSecondary returns the "Standard" scheme catalog.
func (s *Service) CatalogSecondary(ctx context.Context) ([]CatalogEntryResponse, error) {
	return s.catalog(s.catalogRepo.ListSecondary, ctx)
}

func (s *Service) catalog(load func(context.Context) ([]keysystem.CatalogEntry, error), ctx context.Context) ([]CatalogEntryResponse, error) {
	entries, err := load(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, CatalogEntryResponse{Fabrikat: e.Fabrikat, Koncept: e.Koncept})
	}
	return responses, nil
}

func (s *Service) revertIfExpired(ctx context.Context, entity *keysystem.KeySystem) error {
	if !entity.PaymentExpired(time.Now()) {
		return nil
	}
	entity.MarkUnpaid()
	if err := s.repo.Update(ctx, entity); err != nil {
		return fmt.Errorf("failed to revert expired payment: %w", err)
	}
	s.logger.Infow("recurring payment period lapsed, reverted to unpaid",
		"key_system_id", entity.ID(),
		"billing_plan", entity.BillingPlan().String(),
	)
	return nil
}
