package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	backupApp "keybuddy/internal/application/backup"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/utils"
)

// BackupHandler serves backup and restore endpoints.
type BackupHandler struct {
	backupService *backupApp.Service
}

func NewBackupHandler(backupService *backupApp.Service) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

type restoreRequest struct {
	Artifact string `json:"artifact" binding:"required"`
}

func (h *BackupHandler) Create(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	artifact, err := h.backupService.CreateManual(c.Request.Context(), userID, c.ClientIP())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"artifact": artifact}, "backup created")
}

func (h *BackupHandler) Restore(c *gin.Context) {
	var req restoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID := c.GetUint(constants.ContextKeyUserID)
	if err := h.backupService.Restore(c.Request.Context(), req.Artifact, userID, c.ClientIP()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "backup restored", nil)
}

func (h *BackupHandler) List(c *gin.Context) {
	artifacts, err := h.backupService.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"artifacts": artifacts})
}

func (h *BackupHandler) Settings(c *gin.Context) {
	settings, err := h.backupService.Settings(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", settings)
}

func (h *BackupHandler) UpdateSettings(c *gin.Context) {
	var req backupApp.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.backupService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "backup settings updated", updated)
}
