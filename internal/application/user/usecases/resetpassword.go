package usecases

import (
	"context"
	"fmt"

	"keybuddy/internal/domain/user"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

// ResetPasswordUseCase completes the reset flow: validates the token,
// replaces the hash and clears the token so it cannot be replayed.
type ResetPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	tokenGenerator TokenGenerator
	emailService   EmailService
	logger         logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	passwordHasher PasswordHasher,
	tokenGenerator TokenGenerator,
	emailService EmailService,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokenGenerator: tokenGenerator,
		emailService:   emailService,
		logger:         logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	tokenHash := uc.tokenGenerator.Hash(cmd.Token)

	existingUser, err := uc.userRepo.GetByPasswordResetToken(ctx, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to look up reset token: %w", err)
	}
	if existingUser == nil || !existingUser.ResetTokenValid() {
		return errors.NewTokenExpiredError("reset")
	}

	hash, err := uc.passwordHasher.Hash(cmd.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	existingUser.SetPasswordHash(hash)
	existingUser.ClearPasswordResetToken()

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		return fmt.Errorf("failed to save new password: %w", err)
	}

	if err := uc.emailService.SendPasswordChangedEmail(existingUser.Email().String()); err != nil {
		uc.logger.Warnw("failed to send password changed email",
			"user_id", existingUser.ID(), "error", err)
	}

	uc.logger.Infow("password reset completed", "user_id", existingUser.ID())
	return nil
}
