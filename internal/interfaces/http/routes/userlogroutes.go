package routes

import (
	"github.com/gin-gonic/gin"

	"keybuddy/internal/interfaces/http/handlers"
	"keybuddy/internal/interfaces/http/middleware"
)

// RegisterUserLogRoutes wires the activity log, admin only.
func RegisterUserLogRoutes(
	rg *gin.RouterGroup,
	h *handlers.UserLogHandler,
	authMW *middleware.AuthMiddleware,
	permMW *middleware.PermissionMiddleware,
) {
	logs := rg.Group("/logs", authMW.RequireAuth(), permMW.RequireAdmin())
	{
		logs.GET("", h.List)
	}
}
