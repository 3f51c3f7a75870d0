package user

import (
	"context"

	"keybuddy/internal/application/user/dto"
	"keybuddy/internal/application/user/usecases"
	"keybuddy/internal/domain/permission"
	domainUser "keybuddy/internal/domain/user"
	"keybuddy/internal/domain/userlog"
	"keybuddy/internal/shared/config"
	"keybuddy/internal/shared/logger"
)

// Service is the application service that orchestrates user use cases.
type Service struct {
	registerUC         *usecases.RegisterUserUseCase
	loginUC            *usecases.LoginUseCase
	refreshUC          *usecases.RefreshTokenUseCase
	verifyEmailUC      *usecases.VerifyEmailUseCase
	requestResetUC     *usecases.RequestPasswordResetUseCase
	resetPasswordUC    *usecases.ResetPasswordUseCase
	changePasswordUC   *usecases.ChangePasswordUseCase
	enrollTwoFactorUC  *usecases.EnrollTwoFactorUseCase
	confirmTwoFactorUC *usecases.ConfirmTwoFactorUseCase
	disableTwoFactorUC *usecases.DisableTwoFactorUseCase
	createUserUC       *usecases.CreateUserUseCase
	updateUserUC       *usecases.UpdateUserUseCase
	changeRoleUC       *usecases.ChangeRoleUseCase
	deleteUserUC       *usecases.DeleteUserUseCase
	getUserUC          *usecases.GetUserUseCase
	listUsersUC        *usecases.ListUsersUseCase
	logger             logger.Interface
}

// NewService wires the user use cases.
func NewService(
	userRepo domainUser.Repository,
	grantRepo permission.Repository,
	logRepo userlog.Repository,
	enforcer permission.Enforcer,
	passwordHasher usecases.PasswordHasher,
	jwtService usecases.JWTService,
	totpService usecases.TOTPService,
	tokenGenerator usecases.TokenGenerator,
	emailService usecases.EmailService,
	tokenConfig config.TokenConfig,
	logger logger.Interface,
) *Service {
	return &Service{
		registerUC:         usecases.NewRegisterUserUseCase(userRepo, passwordHasher, tokenGenerator, emailService, tokenConfig, logger),
		loginUC:            usecases.NewLoginUseCase(userRepo, logRepo, passwordHasher, jwtService, totpService, logger),
		refreshUC:          usecases.NewRefreshTokenUseCase(jwtService, logger),
		verifyEmailUC:      usecases.NewVerifyEmailUseCase(userRepo, tokenGenerator, logger),
		requestResetUC:     usecases.NewRequestPasswordResetUseCase(userRepo, tokenGenerator, emailService, tokenConfig, logger),
		resetPasswordUC:    usecases.NewResetPasswordUseCase(userRepo, passwordHasher, tokenGenerator, emailService, logger),
		changePasswordUC:   usecases.NewChangePasswordUseCase(userRepo, passwordHasher, emailService, logger),
		enrollTwoFactorUC:  usecases.NewEnrollTwoFactorUseCase(userRepo, totpService, logger),
		confirmTwoFactorUC: usecases.NewConfirmTwoFactorUseCase(userRepo, totpService, logger),
		disableTwoFactorUC: usecases.NewDisableTwoFactorUseCase(userRepo, totpService, logger),
		createUserUC:       usecases.NewCreateUserUseCase(userRepo, passwordHasher, enforcer, logger),
		updateUserUC:       usecases.NewUpdateUserUseCase(userRepo, logger),
		changeRoleUC:       usecases.NewChangeRoleUseCase(userRepo, grantRepo, logRepo, enforcer, logger),
		deleteUserUC:       usecases.NewDeleteUserUseCase(userRepo, grantRepo, enforcer, logger),
		getUserUC:          usecases.NewGetUserUseCase(userRepo, logger),
		listUsersUC:        usecases.NewListUsersUseCase(userRepo, logger),
		logger:             logger,
	}
}

// Register creates a pending account and sends the verification email.
func (s *Service) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	created, err := s.registerUC.Execute(ctx, usecases.RegisterUserCommand{
		Username:           req.Username,
		Email:              req.Email,
		Password:           req.Password,
		FullName:           req.FullName,
		OrganizationNumber: req.OrganizationNumber,
	})
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponse(created), nil
}

// Login authenticates and returns tokens, or a two-factor prompt.
func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	result, err := s.loginUC.Execute(ctx, usecases.LoginCommand{
		Username:      req.Username,
		Password:      req.Password,
		TwoFactorCode: req.TwoFactorCode,
		IPAddress:     req.IPAddress,
	})
	if err != nil {
		return nil, err
	}

	if result.RequiresTwoFactor {
		return &dto.LoginResponse{RequiresTwoFactor: true}, nil
	}

	return &dto.LoginResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
		User:         dto.ToUserResponse(result.User),
	}, nil
}

// Refresh exchanges a refresh token for a new token pair.
func (s *Service) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.TokenResponse, error) {
	tokens, err := s.refreshUC.Execute(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}

// VerifyEmail completes email verification.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	return s.verifyEmailUC.Execute(ctx, token)
}

// RequestPasswordReset starts the reset flow.
func (s *Service) RequestPasswordReset(ctx context.Context, req dto.RequestPasswordResetRequest) error {
	return s.requestResetUC.Execute(ctx, req.Email)
}

// ResetPassword completes the reset flow.
func (s *Service) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	return s.resetPasswordUC.Execute(ctx, usecases.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
}

// ChangePassword changes the caller's own password.
func (s *Service) ChangePassword(ctx context.Context, userID uint, req dto.ChangePasswordRequest) error {
	return s.changePasswordUC.Execute(ctx, usecases.ChangePasswordCommand{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
}

// EnrollTwoFactor returns a fresh TOTP secret and QR code.
func (s *Service) EnrollTwoFactor(ctx context.Context, userID uint) (*dto.TwoFactorEnrollmentResponse, error) {
	enrollment, err := s.enrollTwoFactorUC.Execute(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.TwoFactorEnrollmentResponse{
		Secret: enrollment.Secret,
		QRCode: enrollment.QRCode,
	}, nil
}

// ConfirmTwoFactor enables two-factor after a valid first code.
func (s *Service) ConfirmTwoFactor(ctx context.Context, userID uint, req dto.ConfirmTwoFactorRequest) error {
	return s.confirmTwoFactorUC.Execute(ctx, userID, req.Code)
}

// DisableTwoFactor turns two-factor off.
func (s *Service) DisableTwoFactor(ctx context.Context, userID uint, req dto.ConfirmTwoFactorRequest) error {
	return s.disableTwoFactorUC.Execute(ctx, userID, req.Code)
}

// CreateUser lets an admin create an account directly.
func (s *Service) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	created, err := s.createUserUC.Execute(ctx, usecases.CreateUserCommand{
		Username:           req.Username,
		Email:              req.Email,
		Password:           req.Password,
		FullName:           req.FullName,
		OrganizationNumber: req.OrganizationNumber,
		Role:               req.Role,
	})
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponse(created), nil
}

// UpdateUser updates profile fields.
func (s *Service) UpdateUser(ctx context.Context, userID uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	updated, err := s.updateUserUC.Execute(ctx, usecases.UpdateUserCommand{
		UserID:             userID,
		FullName:           req.FullName,
		OrganizationNumber: req.OrganizationNumber,
	})
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponse(updated), nil
}

// ChangeRole changes a user's role.
func (s *Service) ChangeRole(ctx context.Context, userID uint, req dto.ChangeRoleRequest, changedBy uint, ip string) (*dto.UserResponse, error) {
	updated, err := s.changeRoleUC.Execute(ctx, usecases.ChangeRoleCommand{
		UserID:    userID,
		Role:      req.Role,
		ChangedBy: changedBy,
		IPAddress: ip,
	})
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponse(updated), nil
}

// DeleteUser removes an account.
func (s *Service) DeleteUser(ctx context.Context, userID uint) error {
	return s.deleteUserUC.Execute(ctx, userID)
}

// GetUser retrieves a single user.
func (s *Service) GetUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	found, err := s.getUserUC.Execute(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponse(found), nil
}

// ListUsers retrieves a paginated user list.
func (s *Service) ListUsers(ctx context.Context, req dto.ListUsersRequest) (*dto.ListUsersResponse, error) {
	users, total, err := s.listUsersUC.Execute(ctx, domainUser.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		Username: req.Username,
		Email:    req.Email,
		Status:   req.Status,
		Role:     req.Role,
		OrderBy:  req.OrderBy,
		Order:    req.Order,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, dto.ToUserResponse(u))
	}

	page := req.Page
	if page <= 0 {
		page = 1
	}

	return &dto.ListUsersResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: req.PageSize,
	}, nil
}

