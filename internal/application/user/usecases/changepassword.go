package usecases

import (
	"context"
	"fmt"

	"keybuddy/internal/domain/user"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordUseCase changes the caller's own password after
// verifying the current one.
type ChangePasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	emailService   EmailService
	logger         logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	passwordHasher PasswordHasher,
	emailService EmailService,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		emailService:   emailService,
		logger:         logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	existingUser, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.passwordHasher.Verify(cmd.CurrentPassword, existingUser.PasswordHash()); err != nil {
		return errors.NewInvalidCredentialsError()
	}

	hash, err := uc.passwordHasher.Hash(cmd.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	existingUser.SetPasswordHash(hash)

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		return fmt.Errorf("failed to save new password: %w", err)
	}

	if err := uc.emailService.SendPasswordChangedEmail(existingUser.Email().String()); err != nil {
		uc.logger.Warnw("failed to send password changed email",
			"user_id", existingUser.ID(), "error", err)
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)
	return nil
}
