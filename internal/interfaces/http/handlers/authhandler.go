package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userApp "keybuddy/internal/application/user"
	"keybuddy/internal/application/user/dto"
	userlogApp "keybuddy/internal/application/userlog"
	"keybuddy/internal/shared/config"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/logger"
	"keybuddy/internal/shared/utils"
)

// AuthHandler serves registration, login and account security
// endpoints. A successful login also starts the background scheduler
// the first time; backups only begin once someone has used the app.
type AuthHandler struct {
	userService  *userApp.Service
	logService   *userlogApp.Service
	cookieConfig config.CookieConfig
	jwtConfig    config.JWTConfig
	onLogin      func()
	logger       logger.Interface
}

func NewAuthHandler(
	userService *userApp.Service,
	logService *userlogApp.Service,
	cookieConfig config.CookieConfig,
	jwtConfig config.JWTConfig,
	onLogin func(),
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		logService:   logService,
		cookieConfig: cookieConfig,
		jwtConfig:    jwtConfig,
		onLogin:      onLogin,
		logger:       logger,
	}
}

type verifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "registration successful, please verify your email", created)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	req.IPAddress = c.ClientIP()

	result, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.RequiresTwoFactor {
		utils.SuccessResponse(c, http.StatusOK, "two-factor code required", result)
		return
	}

	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	refreshMaxAge := h.jwtConfig.RefreshExpDays * 24 * 3600
	utils.SetAuthCookies(c, h.cookieConfig, result.AccessToken, result.RefreshToken, accessMaxAge, refreshMaxAge)
	utils.SetCSRFCookie(c, h.cookieConfig, refreshMaxAge)

	if h.onLogin != nil {
		h.onLogin()
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Cookie fallback for browser clients.
		if token := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie); token != "" {
			req.RefreshToken = token
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, "refresh token is required")
			return
		}
	}

	tokens, err := h.userService.Refresh(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	accessMaxAge := h.jwtConfig.AccessExpMinutes * 60
	refreshMaxAge := h.jwtConfig.RefreshExpDays * 24 * 3600
	utils.SetAuthCookies(c, h.cookieConfig, tokens.AccessToken, tokens.RefreshToken, accessMaxAge, refreshMaxAge)

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", tokens)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if userID, exists := c.Get(constants.ContextKeyUserID); exists {
		h.logService.Record(c.Request.Context(), userID.(uint), constants.ActivityLogout, "", c.ClientIP())
	}

	utils.ClearAuthCookies(c, h.cookieConfig)
	utils.ClearCSRFCookie(c, h.cookieConfig)

	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Also accept the token as a query parameter so the email
		// link works without a frontend.
		req.Token = c.Query("token")
		if req.Token == "" {
			utils.ErrorResponse(c, http.StatusBadRequest, "verification token is required")
			return
		}
	}

	if err := h.userService.VerifyEmail(c.Request.Context(), req.Token); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "email verified", nil)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.RequestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.RequestPasswordReset(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Same response whether or not the email exists.
	utils.SuccessResponse(c, http.StatusOK, "if the address is registered, a reset email has been sent", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password reset", nil)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password changed", nil)
}

func (h *AuthHandler) EnrollTwoFactor(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	enrollment, err := h.userService.EnrollTwoFactor(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "scan the QR code and confirm with a code", enrollment)
}

func (h *AuthHandler) ConfirmTwoFactor(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	var req dto.ConfirmTwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.ConfirmTwoFactor(c.Request.Context(), userID, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "two-factor authentication enabled", nil)
}

func (h *AuthHandler) DisableTwoFactor(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	var req dto.ConfirmTwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.DisableTwoFactor(c.Request.Context(), userID, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "two-factor authentication disabled", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	profile, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", profile)
}
