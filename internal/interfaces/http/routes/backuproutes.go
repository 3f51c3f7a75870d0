package routes

import (
	"github.com/gin-gonic/gin"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/interfaces/http/handlers"
	"keybuddy/internal/interfaces/http/middleware"
)

// RegisterBackupRoutes wires backup and restore endpoints.
func RegisterBackupRoutes(
	rg *gin.RouterGroup,
	h *handlers.BackupHandler,
	authMW *middleware.AuthMiddleware,
	permMW *middleware.PermissionMiddleware,
) {
	backups := rg.Group("/backups", authMW.RequireAuth())
	{
		backups.GET("", permMW.RequirePermission(permission.BackupDatabase.String()), h.List)
		backups.POST("", permMW.RequirePermission(permission.BackupDatabase.String()), h.Create)
		backups.POST("/restore", permMW.RequirePermission(permission.RestoreDatabase.String()), h.Restore)
		backups.GET("/settings", permMW.RequirePermission(permission.BackupDatabase.String()), h.Settings)
		backups.PUT("/settings", permMW.RequirePermission(permission.ManageSettings.String()), h.UpdateSettings)
	}
}
