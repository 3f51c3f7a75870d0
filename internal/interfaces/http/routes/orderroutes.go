package routes

import (
	"github.com/gin-gonic/gin"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/interfaces/http/handlers"
	"keybuddy/internal/interfaces/http/middleware"
)

// RegisterOrderRoutes wires manufacturing order endpoints.
func RegisterOrderRoutes(
	rg *gin.RouterGroup,
	h *handlers.OrderHandler,
	authMW *middleware.AuthMiddleware,
	permMW *middleware.PermissionMiddleware,
) {
	orders := rg.Group("/orders", authMW.RequireAuth())
	{
		orders.GET("", permMW.RequirePermission(permission.ViewOrder.String()), h.List)
		orders.POST("", permMW.RequirePermission(permission.CreateOrder.String()), h.Create)
		orders.GET("/:id", permMW.RequirePermission(permission.ViewOrder.String()), h.Get)
		orders.DELETE("/:id", permMW.RequirePermission(permission.DeleteOrder.String()), h.Delete)
		orders.POST("/:id/exported", permMW.RequirePermission(permission.ExportOrder.String()), h.MarkExported)
	}
}
