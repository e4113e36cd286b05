package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"caretrack/internal/application/medication"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

type MedicationHandler struct {
	service MedicationService
	logger  logger.Interface
}

func NewMedicationHandler(service MedicationService, logger logger.Interface) *MedicationHandler {
	return &MedicationHandler{
		service: service,
		logger:  logger,
	}
}

// CreateLog godoc
// @Summary Log medication administration
// @Description Append a medication administration record. Records are never edited.
// @Security Bearer
// @Tags medications
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param request body medication.CreateMedicationLogRequest true "Medication log data"
// @Success 201 {object} utils.APIResponse{data=medication.MedicationLogResponse} "Medication log created successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/medication-logs [post]
func (h *MedicationHandler) CreateLog(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req medication.CreateMedicationLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create medication log", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.CreateLog(c.Request.Context(), facilityID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Medication log created successfully")
}

// ListLogs godoc
// @Summary List medication logs
// @Security Bearer
// @Tags medications
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param child_name query string false "Filter by child name"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.APIResponse{data=medication.MedicationLogListResponse} "Medication logs retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/medication-logs [get]
func (h *MedicationHandler) ListLogs(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	childName := c.Query("child_name")
	limit := utils.ParseIntQuery(c, "limit", 20, 100)
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := h.service.ListLogs(c.Request.Context(), facilityID, childName, limit, offset)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Medication logs retrieved successfully", result)
}
