package handlers

import (
	"github.com/gin-gonic/gin"

	"caretrack/internal/application/document"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

type DocumentHandler struct {
	service DocumentService
	logger  logger.Interface
}

func NewDocumentHandler(service DocumentService, logger logger.Interface) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		logger:  logger,
	}
}

// CreateDocument godoc
// @Summary Create document record
// @Description Register a compliance document. Records without a file carry status "missing".
// @Security Bearer
// @Tags documents
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param request body document.CreateDocumentRequest true "Document data"
// @Success 201 {object} utils.APIResponse{data=document.DocumentResponse} "Document created successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req document.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create document", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.CreateDocument(c.Request.Context(), facilityID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Document created successfully")
}

// ListDocuments godoc
// @Summary List documents
// @Description List the facility's documents with statuses re-derived against the current date
// @Security Bearer
// @Tags documents
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Success 200 {object} utils.APIResponse{data=[]document.DocumentResponse} "Documents retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListDocuments(c.Request.Context(), facilityID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Documents retrieved successfully", result)
}

// UpdateDocument godoc
// @Summary Update document record
// @Security Bearer
// @Tags documents
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param id path int true "Document ID"
// @Param request body document.UpdateDocumentRequest true "Updated document data"
// @Success 200 {object} utils.APIResponse{data=document.DocumentResponse} "Document updated successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Document not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	documentID, err := utils.ParseUintParam(c, "id", "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req document.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update document", "document_id", documentID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.UpdateDocument(c.Request.Context(), facilityID, documentID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Document updated successfully", result)
}

// AttachFile godoc
// @Summary Attach document file
// @Description Record an uploaded file's URL and re-derive the document status
// @Security Bearer
// @Tags documents
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param id path int true "Document ID"
// @Param request body document.AttachFileRequest true "File data"
// @Success 200 {object} utils.APIResponse{data=document.DocumentResponse} "File attached successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Document not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/documents/{id}/file [put]
func (h *DocumentHandler) AttachFile(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	documentID, err := utils.ParseUintParam(c, "id", "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req document.AttachFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for attach file", "document_id", documentID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.AttachFile(c.Request.Context(), facilityID, documentID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "File attached successfully", result)
}
