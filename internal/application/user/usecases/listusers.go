package usecases

import (
	"context"

	"keybuddy/internal/domain/user"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/logger"
)

// ListUsersUseCase retrieves a paginated user list.
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}
	return uc.userRepo.List(ctx, filter)
}
