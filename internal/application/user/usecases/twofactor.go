package usecases

import (
	"context"
	"fmt"

	"keybuddy/internal/domain/user"
	"keybuddy/internal/infrastructure/auth"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

// EnrollTwoFactorUseCase generates a TOTP secret and QR code for the
// user's authenticator app. The secret is stored immediately but
// two-factor only takes effect once ConfirmTwoFactorUseCase sees a
// valid code.
type EnrollTwoFactorUseCase struct {
	userRepo    user.Repository
	totpService TOTPService
	logger      logger.Interface
}

func NewEnrollTwoFactorUseCase(
	userRepo user.Repository,
	totpService TOTPService,
	logger logger.Interface,
) *EnrollTwoFactorUseCase {
	return &EnrollTwoFactorUseCase{
		userRepo:    userRepo,
		totpService: totpService,
		logger:      logger,
	}
}

func (uc *EnrollTwoFactorUseCase) Execute(ctx context.Context, userID uint) (*auth.TOTPEnrollment, error) {
	existingUser, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	if existingUser.TOTPEnabled() {
		return nil, errors.NewConflictError("two-factor is already enabled")
	}

	enrollment, err := uc.totpService.GenerateEnrollment(existingUser.Username().String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate enrollment: %w", err)
	}

	existingUser.SetTwoFactorSecret(enrollment.Secret)
	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		return nil, fmt.Errorf("failed to save enrollment secret: %w", err)
	}

	return enrollment, nil
}

// ConfirmTwoFactorUseCase enables two-factor once the user proves the
// authenticator works.
type ConfirmTwoFactorUseCase struct {
	userRepo    user.Repository
	totpService TOTPService
	logger      logger.Interface
}

func NewConfirmTwoFactorUseCase(
	userRepo user.Repository,
	totpService TOTPService,
	logger logger.Interface,
) *ConfirmTwoFactorUseCase {
	return &ConfirmTwoFactorUseCase{
		userRepo:    userRepo,
		totpService: totpService,
		logger:      logger,
	}
}

func (uc *ConfirmTwoFactorUseCase) Execute(ctx context.Context, userID uint, code string) error {
	existingUser, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return errors.NewNotFoundError("user not found")
	}

	if !uc.totpService.Validate(code, existingUser.TOTPSecret()) {
		return errors.NewTwoFactorInvalidError()
	}

	if err := existingUser.EnableTwoFactor(existingUser.TOTPSecret()); err != nil {
		return err
	}
	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		return fmt.Errorf("failed to enable two-factor: %w", err)
	}

	uc.logger.Infow("two-factor enabled", "user_id", userID)
	return nil
}

// DisableTwoFactorUseCase turns off two-factor after verifying a
// current code.
type DisableTwoFactorUseCase struct {
	userRepo    user.Repository
	totpService TOTPService
	logger      logger.Interface
}

func NewDisableTwoFactorUseCase(
	userRepo user.Repository,
	totpService TOTPService,
	logger logger.Interface,
) *DisableTwoFactorUseCase {
	return &DisableTwoFactorUseCase{
		userRepo:    userRepo,
		totpService: totpService,
		logger:      logger,
	}
}

func (uc *DisableTwoFactorUseCase) Execute(ctx context.Context, userID uint, code string) error {
	existingUser, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return errors.NewNotFoundError("user not found")
	}
	if !existingUser.TOTPEnabled() {
		return errors.NewBadRequestError("two-factor is not enabled")
	}

	if !uc.totpService.Validate(code, existingUser.TOTPSecret()) {
		return errors.NewTwoFactorInvalidError()
	}

	existingUser.DisableTwoFactor()
	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		return fmt.Errorf("failed to disable two-factor: %w", err)
	}

	uc.logger.Infow("two-factor disabled", "user_id", userID)
	return nil
}
