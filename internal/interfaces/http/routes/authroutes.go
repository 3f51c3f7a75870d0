package routes

import (
	"github.com/gin-gonic/gin"

	"keybuddy/internal/interfaces/http/handlers"
	"keybuddy/internal/interfaces/http/middleware"
)

// RegisterAuthRoutes wires the authentication endpoints. The login
// route carries its own tighter rate limit.
func RegisterAuthRoutes(
	rg *gin.RouterGroup,
	h *handlers.AuthHandler,
	authMW *middleware.AuthMiddleware,
	loginLimiter *middleware.RateLimiter,
) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", loginLimiter.Limit(), h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/verify-email", h.VerifyEmail)
		auth.GET("/verify-email", h.VerifyEmail)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password", h.ResetPassword)

		auth.POST("/logout", authMW.RequireAuth(), h.Logout)
		auth.GET("/me", authMW.RequireAuth(), h.Me)
		auth.POST("/change-password", authMW.RequireAuth(), h.ChangePassword)

		twofa := auth.Group("/2fa", authMW.RequireAuth())
		{
			twofa.POST("/enroll", h.EnrollTwoFactor)
			twofa.POST("/confirm", h.ConfirmTwoFactor)
			twofa.POST("/disable", h.DisableTwoFactor)
		}
	}
}
