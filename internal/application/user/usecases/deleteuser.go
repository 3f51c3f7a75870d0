package usecases

import (
	"context"
	"fmt"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/domain/user"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

// DeleteUserUseCase removes an account along with its grants and
// policy rows. The last admin cannot be deleted. Activity logs are
// kept for auditing.
type DeleteUserUseCase struct {
	userRepo  user.Repository
	grantRepo permission.Repository
	enforcer  permission.Enforcer
	logger    logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	grantRepo permission.Repository,
	enforcer permission.Enforcer,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:  userRepo,
		grantRepo: grantRepo,
		enforcer:  enforcer,
		logger:    logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, userID uint) error {
	existingUser, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return errors.NewNotFoundError("user not found")
	}

	if existingUser.IsAdmin() {
		admins, err := uc.userRepo.CountAdmins(ctx)
		if err != nil {
			return fmt.Errorf("failed to count admins: %w", err)
		}
		if admins <= 1 {
			return errors.NewConflictError("at least one administrator must remain")
		}
	}

	if err := uc.grantRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user grants: %w", err)
	}
	if err := uc.enforcer.RemoveUser(ctx, userID); err != nil {
		uc.logger.Warnw("failed to remove user policy", "user_id", userID, "error", err)
	}

	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	uc.logger.Infow("user deleted", "user_id", userID)
	return nil
}
