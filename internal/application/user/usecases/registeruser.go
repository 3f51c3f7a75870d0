package usecases

import (
	"context"
	"fmt"
	"time"

	"keybuddy/internal/domain/user"
	vo "keybuddy/internal/domain/user/value_objects"
	"keybuddy/internal/shared/authorization"
	"keybuddy/internal/shared/config"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

type RegisterUserCommand struct {
	Username           string
	Email              string
	Password           string
	FullName           string
	OrganizationNumber string
}

// RegisterUserUseCase creates a pending account and sends the
// verification email. New registrations always get the user role;
// admins promote them afterwards.
type RegisterUserUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	tokenGenerator TokenGenerator
	emailService   EmailService
	tokenConfig    config.TokenConfig
	logger         logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	passwordHasher PasswordHasher,
	tokenGenerator TokenGenerator,
	emailService EmailService,
	tokenConfig config.TokenConfig,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokenGenerator: tokenGenerator,
		emailService:   emailService,
		tokenConfig:    tokenConfig,
		logger:         logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	username, err := vo.NewUsername(cmd.Username)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	taken, err := uc.userRepo.ExistsByUsername(ctx, username.String())
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, errors.NewConflictError("username is already taken")
	}
	taken, err = uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, errors.NewConflictError("email is already registered")
	}

	newUser, err := user.NewUser(username, email, cmd.FullName, authorization.RoleUser)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	newUser.UpdateProfile(cmd.FullName, cmd.OrganizationNumber)

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	newUser.SetPasswordHash(hash)

	plainToken, tokenHash, err := uc.tokenGenerator.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}
	expiresAt := time.Now().Add(time.Duration(uc.tokenConfig.VerificationExpiresHours) * time.Hour)
	newUser.SetVerificationToken(tokenHash, expiresAt)

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username or email is already taken")
		}
		return nil, err
	}

	// Registration succeeds even when the email cannot be sent; the
	// admin can verify the account manually.
	if err := uc.emailService.SendVerificationEmail(email.String(), plainToken); err != nil {
		uc.logger.Warnw("failed to send verification email",
			"user_id", newUser.ID(), "error", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", username.String())
	return newUser, nil
}
