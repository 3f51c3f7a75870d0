package usecases

import (
	"keybuddy/internal/infrastructure/auth"
	"keybuddy/internal/shared/logger"
)

// RefreshTokenUseCase exchanges a refresh token for a new pair. The
// old refresh token stays valid until it expires; rotation happens by
// clients adopting the new pair.
type RefreshTokenUseCase struct {
	jwtService JWTService
	logger     logger.Interface
}

func NewRefreshTokenUseCase(jwtService JWTService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(refreshToken string) (*auth.TokenPair, error) {
	tokens, err := uc.jwtService.Refresh(refreshToken)
	if err != nil {
		uc.logger.Debugw("token refresh rejected", "error", err)
		return nil, err
	}
	return tokens, nil
}
