package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	settingApp "keybuddy/internal/application/setting"
	"keybuddy/internal/shared/utils"
)

// SettingHandler serves the application settings document.
type SettingHandler struct {
	settingService *settingApp.Service
}

func NewSettingHandler(settingService *settingApp.Service) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

type keyPriceRequest struct {
	Fabrikat string  `json:"fabrikat" binding:"required"`
	Koncept  string  `json:"koncept" binding:"required"`
	Price    float64 `json:"price"`
}

func (h *SettingHandler) Get(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.settingService.Get(c.Request.Context()))
}

func (h *SettingHandler) Update(c *gin.Context) {
	var req settingApp.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.settingService.Update(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "settings updated", updated)
}

func (h *SettingHandler) SetKeyPrice(c *gin.Context) {
	var req keyPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.settingService.SetKeyPrice(c.Request.Context(), req.Fabrikat, req.Koncept, req.Price)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "key price saved", updated)
}

func (h *SettingHandler) DeleteKeyPrice(c *gin.Context) {
	fabrikat := c.Param("fabrikat")
	koncept := c.Param("koncept")

	updated, err := h.settingService.DeleteKeyPrice(c.Request.Context(), fabrikat, koncept)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "key price removed", updated)
}
