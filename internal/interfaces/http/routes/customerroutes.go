package routes

import (
	"github.com/gin-gonic/gin"

	"keybuddy/internal/domain/permission"
	"keybuddy/internal/interfaces/http/handlers"
	"keybuddy/internal/interfaces/http/middleware"
)

// RegisterCustomerRoutes wires customer endpoints.
func RegisterCustomerRoutes(
	rg *gin.RouterGroup,
	h *handlers.CustomerHandler,
	authMW *middleware.AuthMiddleware,
	permMW *middleware.PermissionMiddleware,
) {
	customers := rg.Group("/customers", authMW.RequireAuth())
	{
		customers.GET("", permMW.RequirePermission(permission.ViewCustomer.String()), h.List)
		customers.POST("", permMW.RequirePermission(permission.CreateCustomer.String()), h.Create)
		customers.GET("/:id", permMW.RequirePermission(permission.ViewCustomer.String()), h.Get)
		customers.PUT("/:id", permMW.RequirePermission(permission.EditCustomer.String()), h.Update)
		customers.DELETE("/:id", permMW.RequirePermission(permission.DeleteCustomer.String()), h.Delete)
		customers.GET("/:id/key-systems", permMW.RequirePermission(permission.ViewKeySystem.String()), h.ListKeySystems)
	}
}
