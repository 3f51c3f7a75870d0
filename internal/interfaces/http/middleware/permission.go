package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	permissionApp "keybuddy/internal/application/permission"
	"keybuddy/internal/shared/authorization"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/logger"
	"keybuddy/internal/shared/utils"
)

type PermissionMiddleware struct {
	permissionService *permissionApp.Service
	logger            logger.Interface
}

func NewPermissionMiddleware(permissionService *permissionApp.Service, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		permissionService: permissionService,
		logger:            logger,
	}
}

// RequirePermission guards a route with a single permission check
// against the combined role and grant policy.
func (m *PermissionMiddleware) RequirePermission(perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(constants.ContextKeyUserID)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.permissionService.Check(c.Request.Context(), userID.(uint), perm)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", userID, "permission", perm)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", userID, "permission", perm)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin short-circuits on the role claim set by RequireAuth.
func (m *PermissionMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role != authorization.RoleAdmin.String() {
			utils.ErrorResponse(c, http.StatusForbidden, "administrator access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
