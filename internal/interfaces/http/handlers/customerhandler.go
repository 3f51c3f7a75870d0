package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customerApp "keybuddy/internal/application/customer"
	keysystemApp "keybuddy/internal/application/keysystem"
	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/utils"
)

// CustomerHandler serves customer CRUD plus the customer's key
// system listing.
type CustomerHandler struct {
	customerService  *customerApp.Service
	keySystemService *keysystemApp.Service
}

func NewCustomerHandler(customerService *customerApp.Service, keySystemService *keysystemApp.Service) *CustomerHandler {
	return &CustomerHandler{
		customerService:  customerService,
		keySystemService: keySystemService,
	}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerApp.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	createdBy := c.GetUint(constants.ContextKeyUserID)
	created, err := h.customerService.Create(c.Request.Context(), req, createdBy)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, created)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid customer ID")
		return
	}

	found, err := h.customerService.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", found)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid customer ID")
		return
	}

	var req customerApp.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "customer updated", updated)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid customer ID")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *CustomerHandler) List(c *gin.Context) {
	var req customerApp.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.customerService.List(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Customers, result.Total, result.Page, result.PageSize)
}

func (h *CustomerHandler) ListKeySystems(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid customer ID")
		return
	}

	items, err := h.keySystemService.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}
