package handlers

import (
	"github.com/gin-gonic/gin"

	"caretrack/internal/application/spotcheck"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

type SpotCheckHandler struct {
	service SpotCheckService
	logger  logger.Interface
}

func NewSpotCheckHandler(service SpotCheckService, logger logger.Interface) *SpotCheckHandler {
	return &SpotCheckHandler{
		service: service,
		logger:  logger,
	}
}

// CreateSpotCheck godoc
// @Summary Log ratio spot-check
// @Description Record a staff-to-child ratio observation. The check date and time are stamped server-side in the facility's timezone.
// @Security Bearer
// @Tags spot-checks
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param request body spotcheck.CreateSpotCheckRequest true "Spot-check data"
// @Success 201 {object} utils.APIResponse{data=spotcheck.SpotCheckResponse} "Spot-check logged successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Room not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/ratio-checks [post]
func (h *SpotCheckHandler) CreateSpotCheck(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req spotcheck.CreateSpotCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create spot check", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.CreateSpotCheck(c.Request.Context(), facilityID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Spot-check logged successfully")
}

// ListToday godoc
// @Summary List today's spot-checks
// @Description List the spot-checks logged during the current business day
// @Security Bearer
// @Tags spot-checks
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Success 200 {object} utils.APIResponse{data=[]spotcheck.SpotCheckResponse} "Spot-checks retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/ratio-checks/today [get]
func (h *SpotCheckHandler) ListToday(c *gin.Context) {
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

	utils.SuccessResponse(c, 200, "Spot-checks retrieved successfully", result)
}

// History godoc
// @Summary Spot-check history
// @Description Per-day compliance aggregates for the most recent N days
// @Security Bearer
// @Tags spot-checks
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param days query int false "Number of days (default 7, max 90)"
// @Success 200 {object} utils.APIResponse "History retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/ratio-checks/history [get]
func (h *SpotCheckHandler) History(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	days := utils.ParseIntQuery(c, "days", 7, 90)

	result, err := h.service.History(c.Request.Context(), facilityID, days)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "History retrieved successfully", result)
}

// ReminderStatus godoc
// @Summary Spot-check reminder status
// @Description Today's progress against the configured spot-check schedule
// @Security Bearer
// @Tags spot-checks
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Success 200 {object} utils.APIResponse{data=spotcheck.ReminderStatusResponse} "Reminder status retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/ratio-checks/reminder-status [get]
func (h *SpotCheckHandler) ReminderStatus(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ReminderStatus(c.Request.Context(), facilityID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Reminder status retrieved successfully", result)
}
