package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"caretrack/internal/application/incident"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

type IncidentHandler struct {
	service IncidentService
	logger  logger.Interface
}

func NewIncidentHandler(service IncidentService, logger logger.Interface) *IncidentHandler {
	return &IncidentHandler{
		service: service,
		logger:  logger,
	}
}

// CreateIncident godoc
// @Summary Report incident
// @Security Bearer
// @Tags incidents
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param request body incident.CreateIncidentRequest true "Incident data"
// @Success 201 {object} utils.APIResponse{data=incident.IncidentResponse} "Incident reported successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/incidents [post]
func (h *IncidentHandler) CreateIncident(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req incident.CreateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create incident", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.CreateIncident(c.Request.Context(), facilityID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Incident reported successfully")
}

// ListIncidents godoc
// @Summary List incidents
// @Security Bearer
// @Tags incidents
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.APIResponse{data=incident.IncidentListResponse} "Incidents retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/incidents [get]
func (h *IncidentHandler) ListIncidents(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	limit := utils.ParseIntQuery(c, "limit", 20, 100)
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := h.service.ListIncidents(c.Request.Context(), facilityID, limit, offset)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Incidents retrieved successfully", result)
}

// MarkParentNotified godoc
// @Summary Mark parent notified
// @Security Bearer
// @Tags incidents
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param id path int true "Incident ID"
// @Success 200 {object} utils.APIResponse{data=incident.IncidentResponse} "Incident updated"
// @Failure 404 {object} utils.APIResponse "Incident not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/incidents/{id}/parent-notified [post]
func (h *IncidentHandler) MarkParentNotified(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	incidentID, err := utils.ParseUintParam(c, "id", "incident")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.MarkParentNotified(c.Request.Context(), facilityID, incidentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Incident updated", result)
}
