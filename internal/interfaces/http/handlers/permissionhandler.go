package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	permissionApp "keybuddy/internal/application/permission"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/utils"
)

// PermissionHandler serves the grant management endpoints.
type PermissionHandler struct {
	permissionService *permissionApp.Service
}

func NewPermissionHandler(permissionService *permissionApp.Service) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService}
}

type grantRequest struct {
	Permission string `json:"permission" binding:"required"`
}

func (h *PermissionHandler) Grant(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return
	}

	var req grantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	grantedBy := c.GetUint(constants.ContextKeyUserID)
	if err := h.permissionService.Grant(c.Request.Context(), userID, req.Permission, grantedBy); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "permission granted", nil)
}

func (h *PermissionHandler) Revoke(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return
	}

	perm := c.Param("permission")
	if err := h.permissionService.Revoke(c.Request.Context(), userID, perm); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "permission revoked", nil)
}

func (h *PermissionHandler) ListForUser(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return
	}

	result, err := h.permissionService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PermissionHandler) ListAll(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.permissionService.ListAll())
}
