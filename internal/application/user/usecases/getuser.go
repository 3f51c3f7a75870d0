package usecases

import (
	"context"
	"fmt"

	"keybuddy/internal/domain/user"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

// GetUserUseCase retrieves a single user.
type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID uint) (*user.User, error) {
	existingUser, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return existingUser, nil
}
