package usecases

import (
	"context"
	"fmt"

	"keybuddy/internal/domain/user"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

// VerifyEmailUseCase activates a pending account from the token in the
// verification email.
type VerifyEmailUseCase struct {
	userRepo       user.Repository
	tokenGenerator TokenGenerator
	logger         logger.Interface
}

func NewVerifyEmailUseCase(
	userRepo user.Repository,
	tokenGenerator TokenGenerator,
	logger logger.Interface,
) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, plainToken string) error {
	tokenHash := uc.tokenGenerator.Hash(plainToken)

	existingUser, err := uc.userRepo.GetByVerificationToken(ctx, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to look up verification token: %w", err)
	}
	if existingUser == nil {
		return errors.NewTokenInvalidError("verification")
	}

	if err := existingUser.VerifyEmail(); err != nil {
		return err
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		return fmt.Errorf("failed to save verified user: %w", err)
	}

	uc.logger.Infow("email verified", "user_id", existingUser.ID())
	return nil
}
