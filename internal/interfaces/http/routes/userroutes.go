package routes

import (
	"github.com/gin-gonic/gin"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/interfaces/http/handlers"
	"keybuddy/internal/interfaces/http/middleware"
)

// RegisterUserRoutes wires user administration endpoints.
func RegisterUserRoutes(
	rg *gin.RouterGroup,
	h *handlers.UserHandler,
	authMW *middleware.AuthMiddleware,
	permMW *middleware.PermissionMiddleware,
) {
	users := rg.Group("/users", authMW.RequireAuth())
	{
		users.GET("", permMW.RequirePermission(permission.ViewUser.String()), h.List)
		users.POST("", permMW.RequirePermission(permission.CreateUser.String()), h.Create)
		users.GET("/:id", permMW.RequirePermission(permission.ViewUser.String()), h.Get)
		users.PUT("/:id", permMW.RequirePermission(permission.EditUser.String()), h.Update)
		users.PUT("/:id/role", permMW.RequireAdmin(), h.ChangeRole)
		users.DELETE("/:id", permMW.RequirePermission(permission.DeleteUser.String()), h.Delete)
	}
}
