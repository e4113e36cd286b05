package handlers

import (
	"github.com/gin-gonic/gin"

	"caretrack/internal/application/alert"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

type AlertHandler struct {
	service AlertService
	logger  logger.Interface
}

func NewAlertHandler(service AlertService, logger logger.Interface) *AlertHandler {
	return &AlertHandler{
		service: service,
		logger:  logger,
	}
}

// GenerateAlertsEnvelope is the response payload for alert generation.
// Unlike the standard envelope, the generated alerts sit at the top level
// so consumers read them without unwrapping a data field.
type GenerateAlertsEnvelope struct {
	Success   bool                   `json:"success"`
	Message   string                 `json:"message"`
	Generated int                    `json:"generated"`
	Alerts    []*alert.AlertResponse `json:"alerts"`
}

// GenerateAlerts godoc
// @Summary Run alert generation
// @Description Evaluate every alert rule for the facility: certification expiry, missing spot-checks, and document status. Deduplicates against open alerts and auto-resolves cleared conditions.
// @Security Bearer
// @Tags alerts
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Success 200 {object} handlers.GenerateAlertsEnvelope "Alert generation completed"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 429 {object} utils.APIResponse "Rate limit exceeded"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/alerts/generate [post]
func (h *AlertHandler) GenerateAlerts(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GenerateAlerts(c.Request.Context(), facilityID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(200, GenerateAlertsEnvelope{
		Success:   true,
		Message:   "Alert generation completed",
		Generated: result.Generated,
		Alerts:    result.Alerts,
	})
}

// ListActive godoc
// @Summary List active alerts
// @Description List unresolved alerts ordered by severity, then recency
// @Security Bearer
// @Tags alerts
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Success 200 {object} utils.APIResponse{data=[]alert.AlertResponse} "Alerts retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/alerts [get]
func (h *AlertHandler) ListActive(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListActive(c.Request.Context(), facilityID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Alerts retrieved successfully", result)
}

// Acknowledge godoc
// @Summary Acknowledge alert
// @Description Mark an alert as seen. Re-acknowledging updates the acknowledger.
// @Security Bearer
// @Tags alerts
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param id path int true "Alert ID"
// @Param request body alert.AcknowledgeRequest true "Acknowledger"
// @Success 200 {object} utils.APIResponse{data=alert.AlertResponse} "Alert acknowledged"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Alert not found"
// @Failure 409 {object} utils.APIResponse "Alert already resolved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/alerts/{id}/acknowledge [patch]
func (h *AlertHandler) Acknowledge(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	alertID, err := utils.ParseUintParam(c, "id", "alert")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req alert.AcknowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for acknowledge alert", "alert_id", alertID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.Acknowledge(c.Request.Context(), facilityID, alertID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Alert acknowledged", result)
}

// Resolve godoc
// @Summary Resolve alert
// @Description Mark an alert as resolved. Resolution is terminal.
// @Security Bearer
// @Tags alerts
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param id path int true "Alert ID"
// @Success 200 {object} utils.APIResponse{data=alert.AlertResponse} "Alert resolved"
// @Failure 404 {object} utils.APIResponse "Alert not found"
// @Failure 409 {object} utils.APIResponse "Alert already resolved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/alerts/{id}/resolve [patch]
func (h *AlertHandler) Resolve(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	alertID, err := utils.ParseUintParam(c, "id", "alert")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Resolve(c.Request.Context(), facilityID, alertID, actorNameFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Alert resolved", result)
}

// Summary godoc
// @Summary Alert summary
// @Description Per-severity counts of active alerts
// @Security Bearer
// @Tags alerts
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Success 200 {object} utils.APIResponse{data=alert.SummaryResponse} "Summary retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/alerts/summary [get]
func (h *AlertHandler) Summary(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Summary(c.Request.Context(), facilityID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Summary retrieved successfully", result)
}

// History godoc
// @Summary Alert history
// @Description Lifecycle audit trail for one alert
// @Security Bearer
// @Tags alerts
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param id path int true "Alert ID"
// @Success 200 {object} utils.APIResponse{data=[]alert.HistoryResponse} "History retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Alert not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/alerts/{id}/history [get]
func (h *AlertHandler) History(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	alertID, err := utils.ParseUintParam(c, "id", "alert")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.History(c.Request.Context(), facilityID, alertID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "History retrieved successfully", result)
}
