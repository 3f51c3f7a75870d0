package usecases

import (
	"context"
	"fmt"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/domain/user"
	vo "keybuddy/internal/domain/user/value_objects"
	"keybuddy/internal/shared/authorization"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

type CreateUserCommand struct {
	Username           string
	Email              string
	Password           string
	FullName           string
	OrganizationNumber string
	Role               string
}

// CreateUserUseCase lets an admin create an account directly. The
// account is active and verified from the start; no email round-trip.
type CreateUserUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	enforcer       permission.Enforcer
	logger         logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	passwordHasher PasswordHasher,
	enforcer permission.Enforcer,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		enforcer:       enforcer,
		logger:         logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	username, err := vo.NewUsername(cmd.Username)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	role := authorization.ParseUserRole(cmd.Role)

	taken, err := uc.userRepo.ExistsByUsername(ctx, username.String())
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, errors.NewConflictError("username is already taken")
	}

	newUser, err := user.NewUser(username, email, cmd.FullName, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	newUser.UpdateProfile(cmd.FullName, cmd.OrganizationNumber)

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	newUser.SetPasswordHash(hash)

	if err := newUser.VerifyEmailByAdmin(); err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username or email is already taken")
		}
		return nil, err
	}

	if err := uc.enforcer.SyncUser(ctx, newUser.ID(), role, nil); err != nil {
		uc.logger.Warnw("failed to sync policy for new user", "user_id", newUser.ID(), "error", err)
	}

	uc.logger.Infow("user created by admin", "user_id", newUser.ID(), "role", role.String())
	return newUser, nil
}
