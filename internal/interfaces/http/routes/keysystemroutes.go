package routes

import (
	"github.com/gin-gonic/gin"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/interfaces/http/handlers"
	"keybuddy/internal/interfaces/http/middleware"
)

// RegisterKeySystemRoutes wires key system endpoints including the
// billing toggles and the reference catalogs.
func RegisterKeySystemRoutes(
	rg *gin.RouterGroup,
	h *handlers.KeySystemHandler,
	authMW *middleware.AuthMiddleware,
	permMW *middleware.PermissionMiddleware,
) {
	systems := rg.Group("/key-systems", authMW.RequireAuth())
	{
		systems.GET("", permMW.RequirePermission(permission.ViewKeySystem.String()), h.List)
		systems.POST("", permMW.RequirePermission(permission.CreateKeySystem.String()), h.Create)
		systems.GET("/:id", permMW.RequirePermission(permission.ViewKeySystem.String()), h.Get)
		systems.PUT("/:id", permMW.RequirePermission(permission.EditKeySystem.String()), h.Update)
		systems.DELETE("/:id", permMW.RequirePermission(permission.DeleteKeySystem.String()), h.Delete)

		systems.POST("/:id/paid", permMW.RequirePermission(permission.EditKeySystem.String()), h.SetPaid)
		systems.POST("/:id/unpaid", permMW.RequirePermission(permission.EditKeySystem.String()), h.SetUnpaid)
		systems.POST("/:id/invoices", permMW.RequirePermission(permission.EditKeySystem.String()), h.RecordInvoice)
		systems.GET("/:id/orders", permMW.RequirePermission(permission.ViewOrder.String()), h.ListOrders)
	}

	catalogs := rg.Group("/catalogs", authMW.RequireAuth())
	{
		catalogs.GET("/primary", h.Catalog)
		catalogs.GET("/secondary", h.CatalogSecondary)
	}
}
