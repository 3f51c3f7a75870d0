package usecases

import (
	"context"
	"fmt"
	"time"

	"keybuddy/internal/domain/user"
	"keybuddy/internal/shared/config"
	"keybuddy/internal/shared/logger"
)

// RequestPasswordResetUseCase starts the password reset flow. The
// result is identical whether or not the email exists, so the endpoint
// cannot be used to probe for accounts.
type RequestPasswordResetUseCase struct {
	userRepo       user.Repository
	tokenGenerator TokenGenerator
	emailService   EmailService
	tokenConfig    config.TokenConfig
	logger         logger.Interface
}

func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	tokenGenerator TokenGenerator,
	emailService EmailService,
	tokenConfig config.TokenConfig,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		emailService:   emailService,
		tokenConfig:    tokenConfig,
		logger:         logger,
	}
}

func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, email string) error {
	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}
	if existingUser == nil {
		uc.logger.Debugw("password reset requested for unknown email")
		return nil
	}

	plainToken, tokenHash, err := uc.tokenGenerator.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := time.Now().Add(time.Duration(uc.tokenConfig.ResetExpiresMinutes) * time.Minute)
	existingUser.SetPasswordResetToken(tokenHash, expiresAt)

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}

	if err := uc.emailService.SendPasswordResetEmail(email, plainToken); err != nil {
		uc.logger.Errorw("failed to send password reset email",
			"user_id", existingUser.ID(), "error", err)
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	uc.logger.Infow("password reset requested", "user_id", existingUser.ID())
	return nil
}
