package routes

import (
	"github.com/gin-gonic/gin"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/interfaces/http/handlers"
	"keybuddy/internal/interfaces/http/middleware"
)

// RegisterSettingRoutes wires application settings endpoints.
func RegisterSettingRoutes(
	rg *gin.RouterGroup,
	h *handlers.SettingHandler,
	authMW *middleware.AuthMiddleware,
	permMW *middleware.PermissionMiddleware,
) {
	settings := rg.Group("/settings", authMW.RequireAuth())
	{
		settings.GET("", h.Get)

		manage := settings.Group("", permMW.RequirePermission(permission.ManageSettings.String()))
		{
			manage.PUT("", h.Update)
			manage.POST("/key-prices", h.SetKeyPrice)
			manage.DELETE("/key-prices/:fabrikat/:koncept", h.DeleteKeyPrice)
		}
	}
}
