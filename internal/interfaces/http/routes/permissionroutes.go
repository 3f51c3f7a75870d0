package routes

import (
	"github.com/gin-gonic/gin"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/interfaces/http/handlers"
	"keybuddy/internal/interfaces/http/middleware"
)

// RegisterPermissionRoutes wires grant management endpoints.
func RegisterPermissionRoutes(
	rg *gin.RouterGroup,
	h *handlers.PermissionHandler,
	authMW *middleware.AuthMiddleware,
	permMW *middleware.PermissionMiddleware,
) {
	perms := rg.Group("/permissions", authMW.RequireAuth())
	{
		perms.GET("", h.ListAll)

		manage := perms.Group("", permMW.RequirePermission(permission.ManagePermissions.String()))
		{
			manage.GET("/users/:id", h.ListForUser)
			manage.POST("/users/:id", h.Grant)
			manage.DELETE("/users/:id/:permission", h.Revoke)
		}
	}
}
