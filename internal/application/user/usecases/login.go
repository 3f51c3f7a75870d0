package usecases

import (
	"context"
	"fmt"

	"keybuddy/internal/domain/user"
	"keybuddy/internal/domain/userlog"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

type LoginCommand struct {
	Username      string
	Password      string
	TwoFactorCode string
	IPAddress     string
}

type LoginResult struct {
	User              *user.User
	RequiresTwoFactor bool
	AccessToken       string
	RefreshToken      string
	ExpiresIn         int64
}

// LoginUseCase authenticates a user. Accounts with two-factor enabled
// go through a second step: the first call returns RequiresTwoFactor
// and the client repeats the call with the code included.
type LoginUseCase struct {
	userRepo       user.Repository
	logRepo        userlog.Repository
	passwordHasher PasswordHasher
	jwtService     JWTService
	totpService    TOTPService
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	logRepo userlog.Repository,
	passwordHasher PasswordHasher,
	jwtService JWTService,
	totpService TOTPService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		logRepo:        logRepo,
		passwordHasher: passwordHasher,
		jwtService:     jwtService,
		totpService:    totpService,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := uc.passwordHasher.Verify(cmd.Password, existingUser.PasswordHash()); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := existingUser.CanLogin(); err != nil {
		return nil, err
	}

	if existingUser.RequiresTwoFactor() {
		if cmd.TwoFactorCode == "" {
			return &LoginResult{User: existingUser, RequiresTwoFactor: true}, nil
		}
		if !uc.totpService.Validate(cmd.TwoFactorCode, existingUser.TOTPSecret()) {
			return nil, errors.NewTwoFactorInvalidError()
		}
	}

	// Passwords verified against a legacy SHA-256 hash are rehashed
	// with bcrypt on the spot.
	if uc.passwordHasher.IsLegacyHash(existingUser.PasswordHash()) {
		if newHash, err := uc.passwordHasher.Hash(cmd.Password); err == nil {
			existingUser.UpgradePasswordHash(newHash)
			uc.logger.Infow("legacy password hash upgraded", "user_id", existingUser.ID())
		}
	}

	existingUser.RecordLogin()
	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Warnw("failed to record login", "user_id", existingUser.ID(), "error", err)
	}

	tokens, err := uc.jwtService.Generate(
		existingUser.ID(),
		existingUser.Username().String(),
		existingUser.Role(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.recordActivity(ctx, existingUser.ID(), cmd.IPAddress)

	uc.logger.Infow("user logged in", "user_id", existingUser.ID(), "username", cmd.Username)

	return &LoginResult{
		User:         existingUser,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}

func (uc *LoginUseCase) recordActivity(ctx context.Context, userID uint, ip string) {
	entry, err := userlog.NewUserLog(userID, constants.ActivityLogin, "", ip)
	if err != nil {
		return
	}
	if err := uc.logRepo.Create(ctx, entry); err != nil {
		uc.logger.Warnw("failed to write login activity", "user_id", userID, "error", err)
	}
}
