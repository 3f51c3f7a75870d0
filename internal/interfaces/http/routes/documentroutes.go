package routes

import (
	"github.com/gin-gonic/gin"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/interfaces/http/handlers"
	"keybuddy/internal/interfaces/http/middleware"
)

// RegisterDocumentRoutes wires the encrypted PDF endpoints.
func RegisterDocumentRoutes(
	rg *gin.RouterGroup,
	h *handlers.DocumentHandler,
	authMW *middleware.AuthMiddleware,
	permMW *middleware.PermissionMiddleware,
) {
	documents := rg.Group("/documents", authMW.RequireAuth())
	{
		documents.POST("", permMW.RequirePermission(permission.ExportOrder.String()), h.Store)
		documents.GET("/:kind/:id", permMW.RequirePermission(permission.ViewOrder.String()), h.Download)
		documents.GET("/:kind/:id/list", permMW.RequirePermission(permission.ViewOrder.String()), h.List)
		documents.DELETE("/:id", permMW.RequirePermission(permission.DeleteOrder.String()), h.Delete)
	}
}
