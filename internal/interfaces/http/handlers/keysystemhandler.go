package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	keysystemApp "keybuddy/internal/application/keysystem"
	orderApp "keybuddy/internal/application/order"
	"keybuddy/internal/shared/utils"
)

// KeySystemHandler serves key system CRUD, the billing toggles and
// the fabrikat/koncept catalogs.
type KeySystemHandler struct {
	keySystemService *keysystemApp.Service
	orderService     *orderApp.Service
}

func NewKeySystemHandler(keySystemService *keysystemApp.Service, orderService *orderApp.Service) *KeySystemHandler {
	return &KeySystemHandler{
		keySystemService: keySystemService,
		orderService:     orderService,
	}
}

func (h *KeySystemHandler) Create(c *gin.Context) {
	var req keysystemApp.KeySystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.keySystemService.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, created)
}

func (h *KeySystemHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid key system ID")
		return
	}

	found, err := h.keySystemService.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", found)
}

func (h *KeySystemHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid key system ID")
		return
	}

	var req keysystemApp.KeySystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.keySystemService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "key system updated", updated)
}

func (h *KeySystemHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid key system ID")
		return
	}

	if err := h.keySystemService.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *KeySystemHandler) List(c *gin.Context) {
	var req keysystemApp.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.keySystemService.List(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.KeySystems, result.Total, result.Page, result.PageSize)
}

func (h *KeySystemHandler) SetPaid(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid key system ID")
		return
	}

	updated, err := h.keySystemService.SetPaid(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "marked paid", updated)
}

func (h *KeySystemHandler) SetUnpaid(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid key system ID")
		return
	}

	updated, err := h.keySystemService.SetUnpaid(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "marked unpaid", updated)
}

func (h *KeySystemHandler) RecordInvoice(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid key system ID")
		return
	}

	updated, err := h.keySystemService.RecordInvoice(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "invoice recorded", updated)
}

func (h *KeySystemHandler) ListOrders(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid key system ID")
		return
	}

	items, err := h.orderService.ListByKeySystem(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *KeySystemHandler) Catalog(c *gin.Context) {
	entries, err := h.keySystemService.Catalog(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", entries)
}

func (h *KeySystemHandler) CatalogSecondary(c *gin.Context) {
	entries, err := h.keySystemService.CatalogSecondary(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", entries)
}
