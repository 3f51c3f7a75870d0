package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userlogApp "keybuddy/internal/application/userlog"
	"keybuddy/internal/shared/utils"
)

// UserLogHandler serves the activity log.
type UserLogHandler struct {
	logService *userlogApp.Service
}

func NewUserLogHandler(logService *userlogApp.Service) *UserLogHandler {
	return &UserLogHandler{logService: logService}
}

func (h *UserLogHandler) List(c *gin.Context) {
	var req userlogApp.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.logService.List(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Logs, result.Total, result.Page, result.PageSize)
}
