package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderApp "keybuddy/internal/application/order"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/utils"
)

// OrderHandler serves manufacturing order endpoints.
type OrderHandler struct {
	orderService *orderApp.Service
}

func NewOrderHandler(orderService *orderApp.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req orderApp.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	req.IPAddress = c.ClientIP()

	createdBy := c.GetUint(constants.ContextKeyUserID)
	created, err := h.orderService.Create(c.Request.Context(), req, createdBy)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, created)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order ID")
		return
	}

	found, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", found)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order ID")
		return
	}

	deletedBy := c.GetUint(constants.ContextKeyUserID)
	if err := h.orderService.Delete(c.Request.Context(), id, deletedBy, c.ClientIP()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *OrderHandler) MarkExported(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order ID")
		return
	}

	if err := h.orderService.MarkExported(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "order marked as exported", nil)
}

func (h *OrderHandler) List(c *gin.Context) {
	var req orderApp.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.orderService.List(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Orders, result.Total, result.Page, result.PageSize)
}
