package order

import (
	"context"
	"fmt"

	"keybuddy/internal/domain/keysystem"
	"keybuddy/internal/domain/order"
	"keybuddy/internal/domain/userlog"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

// Service orchestrates manufacturing orders. Each order reserves a
// contiguous key sequence range; after a successful create the owning
// key system's last sequence number is advanced opportunistically.
type Service struct {
	repo          order.Repository
	keySystemRepo keysystem.Repository
	logRepo       userlog.Repository
	logger        logger.Interface
}

// NewService creates an order service.
func NewService(
	repo order.Repository,
	keySystemRepo keysystem.Repository,
	logRepo userlog.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		repo:          repo,
		keySystemRepo: keySystemRepo,
		logRepo:       logRepo,
		logger:        logger,
	}
}

// Create stores a new order. When no sequence start is given, the
// order continues from the key system's last sequence number.
func (s *Service) Create(ctx context.Context, req OrderRequest, createdBy uint) (*OrderResponse, error) {
	ks, err := s.keySystemRepo.GetByID(ctx, req.KeySystemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load key system: %w", err)
	}
	if ks == nil {
		return nil, errors.NewNotFoundError("key system not found")
	}
	if ks.CustomerID() != req.CustomerID {
		return nil, errors.NewValidationError("key system does not belong to the customer")
	}

	sequenceStart := req.SequenceStart
	if sequenceStart <= 0 {
		sequenceStart = ks.LastSequenceNumber() + 1
	}

	entity, err := order.NewOrder(
		req.CustomerID,
		req.KeySystemID,
		req.KeyCode,
		req.KeyProfile,
		req.Quantity,
		sequenceStart,
		req.KeyResponsible,
		createdBy,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	// Advance the key system's sequence so the next order continues
	// where this one ended. A failure here does not undo the order.
	if entity.SequenceEnd() > ks.LastSequenceNumber() {
		if err := s.keySystemRepo.UpdateSequenceNumber(ctx, ks.ID(), entity.SequenceEnd()); err != nil {
			s.logger.Warnw("failed to advance key system sequence",
				"key_system_id", ks.ID(),
				"sequence_end", entity.SequenceEnd(),
				"error", err,
			)
		}
	}

	s.recordActivity(ctx, createdBy, constants.ActivityOrderCreated,
		fmt.Sprintf("order_%d_%s", entity.ID(), entity.KeyCode()), req.IPAddress)

	return toResponse(entity), nil
}

// Get retrieves an order by ID.
func (s *Service) Get(ctx context.Context, id uint) (*OrderResponse, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("order not found")
	}
	return toResponse(entity), nil
}

// Delete removes an order. The key system sequence is never rolled
// back; deleted ranges stay burned.
func (s *Service) Delete(ctx context.Context, id uint, deletedBy uint, ipAddress string) error {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entity == nil {
		return errors.NewNotFoundError("order not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.recordActivity(ctx, deletedBy, constants.ActivityOrderDeleted,
		fmt.Sprintf("order_%d_%s", entity.ID(), entity.KeyCode()), ipAddress)

	return nil
}

// MarkExported flags an order as having had its PDF generated.
func (s *Service) MarkExported(ctx context.Context, id uint) error {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entity == nil {
		return errors.NewNotFoundError("order not found")
	}

	entity.MarkExported()
	return s.repo.Update(ctx, entity)
}

// List retrieves a paginated order list.
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

	items, total, err := s.repo.List(ctx, order.ListFilter{
		Page:        req.Page,
		PageSize:    req.PageSize,
		CustomerID:  req.CustomerID,
		KeySystemID: req.KeySystemID,
		Search:      req.Search,
		OrderBy:     req.OrderBy,
		Order:       req.Order,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]*OrderResponse, 0, len(items))
	for _, o := range items {
		responses = append(responses, toResponse(o))
	}

	return &ListResponse{
		Orders:   responses,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// ListByKeySystem returns a key system's order history, newest first.
func (s *Service) ListByKeySystem(ctx context.Context, keySystemID uint) ([]*OrderResponse, error) {
	items, err := s.repo.ListByKeySystem(ctx, keySystemID)
	if err != nil {
		return nil, err
	}
	responses := make([]*OrderResponse, 0, len(items))
	for _, o := range items {
		responses = append(responses, toResponse(o))
	}
	return responses, nil
}

func (s *Service) recordActivity(ctx context.Context, userID uint, activityType, details, ipAddress string) {
	entry, err := userlog.NewUserLog(userID, activityType, details, ipAddress)
	if err != nil {
		s.logger.Warnw("failed to build activity log entry", "error", err)
		return
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		s.logger.Warnw("failed to record activity", "activity", activityType, "error", err)
	}
}
