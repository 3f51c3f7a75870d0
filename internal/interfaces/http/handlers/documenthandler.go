package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	documentApp "keybuddy/internal/application/document"
	"keybuddy/internal/domain/document"
	"keybuddy/internal/shared/utils"
)

// DocumentHandler serves the encrypted PDF attachments. Content is
// returned as application/pdf, not JSON.
type DocumentHandler struct {
	documentService *documentApp.Service
}

func NewDocumentHandler(documentService *documentApp.Service) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (h *DocumentHandler) Store(c *gin.Context) {
	var req documentApp.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	stored, err := h.documentService.Store(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, stored)
}

func (h *DocumentHandler) Download(c *gin.Context) {
	kind := document.Kind(c.Param("kind"))
	parentID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid parent ID")
		return
	}

	content, err := h.documentService.Get(c.Request.Context(), kind, parentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/pdf", content.Content)
}

func (h *DocumentHandler) List(c *gin.Context) {
	kind := document.Kind(c.Param("kind"))
	parentID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid parent ID")
		return
	}

	items, err := h.documentService.List(c.Request.Context(), kind, parentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid document ID")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
