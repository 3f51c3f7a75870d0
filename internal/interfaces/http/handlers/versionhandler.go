package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/utils"
	"keybuddy/internal/shared/version"
)

// VersionHandler reports the application version.
type VersionHandler struct{}

func NewVersionHandler() *VersionHandler {
	return &VersionHandler{}
}

func (h *VersionHandler) Get(c *gin.Context) {
	v := version.Current
	if v == "" {
		loaded, err := version.Load(constants.VersionFile)
		if err != nil {
			v = "dev"
		} else {
			v = loaded
		}
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"version": v})
}
