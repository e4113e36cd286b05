package handlers

import (
	"github.com/gin-gonic/gin"

	"caretrack/internal/application/checklist"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

type ChecklistHandler struct {
	service ChecklistService
	logger  logger.Interface
}

func NewChecklistHandler(service ChecklistService, logger logger.Interface) *ChecklistHandler {
	return &ChecklistHandler{
		service: service,
		logger:  logger,
	}
}

// CreateChecklist godoc
// @Summary Open daily checklist
// @Description Open today's checklist for a room. One checklist per room per business day.
// @Security Bearer
// @Tags checklists
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param request body checklist.CreateChecklistRequest true "Checklist data"
// @Success 201 {object} utils.APIResponse{data=checklist.ChecklistResponse} "Checklist opened successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Room not found"
// @Failure 409 {object} utils.APIResponse "Checklist already exists for this room today"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/checklists [post]
func (h *ChecklistHandler) CreateChecklist(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req checklist.CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create checklist", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.CreateChecklist(c.Request.Context(), facilityID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Checklist opened successfully")
}

// ListToday godoc
// @Summary List today's checklists
// @Security Bearer
// @Tags checklists
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Success 200 {object} utils.APIResponse{data=[]checklist.ChecklistResponse} "Checklists retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/checklists/today [get]
func (h *ChecklistHandler) ListToday(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListToday(c.Request.Context(), facilityID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Checklists retrieved successfully", result)
}

// UpdateChecklist godoc
// @Summary Update checklist items
// @Description Replace the item states of an open checklist
// @Security Bearer
// @Tags checklists
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param id path int true "Checklist ID"
// @Param request body checklist.UpdateChecklistRequest true "Updated items"
// @Success 200 {object} utils.APIResponse{data=checklist.ChecklistResponse} "Checklist updated successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Checklist not found"
// @Failure 409 {object} utils.APIResponse "Checklist already completed"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/checklists/{id} [put]
func (h *ChecklistHandler) UpdateChecklist(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	checklistID, err := utils.ParseUintParam(c, "id", "checklist")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req checklist.UpdateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update checklist", "checklist_id", checklistID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.UpdateChecklist(c.Request.Context(), facilityID, checklistID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Checklist updated successfully", result)
}

// CompleteChecklist godoc
// @Summary Complete checklist
// @Description Close a checklist. Every item must be done.
// @Security Bearer
// @Tags checklists
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param id path int true "Checklist ID"
// @Param request body checklist.CompleteChecklistRequest true "Completer"
// @Success 200 {object} utils.APIResponse{data=checklist.ChecklistResponse} "Checklist completed successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Checklist not found"
// @Failure 409 {object} utils.APIResponse "Checklist already completed or items pending"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/checklists/{id}/complete [post]
func (h *ChecklistHandler) CompleteChecklist(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	checklistID, err := utils.ParseUintParam(c, "id", "checklist")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req checklist.CompleteChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for complete checklist", "checklist_id", checklistID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.CompleteChecklist(c.Request.Context(), facilityID, checklistID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Checklist completed successfully", result)
}
