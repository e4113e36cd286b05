package handlers

import (
	"github.com/gin-gonic/gin"

	"caretrack/internal/application/staff"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

type StaffHandler struct {
	service StaffService
	logger  logger.Interface
}

func NewStaffHandler(service StaffService, logger logger.Interface) *StaffHandler {
	return &StaffHandler{
		service: service,
		logger:  logger,
	}
}

// CreateStaff godoc
// @Summary Create staff member
// @Security Bearer
// @Tags staff
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param request body staff.CreateStaffRequest true "Staff member data"
// @Success 201 {object} utils.APIResponse{data=staff.StaffResponse} "Staff member created successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/staff [post]
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req staff.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create staff", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.CreateStaff(c.Request.Context(), facilityID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Staff member created successfully")
}

// ListStaff godoc
// @Summary List staff members
// @Security Bearer
// @Tags staff
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param active_only query bool false "Only active staff"
// @Success 200 {object} utils.APIResponse{data=[]staff.StaffResponse} "Staff retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/staff [get]
func (h *StaffHandler) ListStaff(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	activeOnly := c.Query("active_only") == "true"

	result, err := h.service.ListStaff(c.Request.Context(), facilityID, activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Staff retrieved successfully", result)
}

// UpdateStaff godoc
// @Summary Update staff member
// @Security Bearer
// @Tags staff
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param id path int true "Staff member ID"
// @Param request body staff.UpdateStaffRequest true "Updated staff data"
// @Success 200 {object} utils.APIResponse{data=staff.StaffResponse} "Staff member updated successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Staff member not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/staff/{id} [put]
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	staffID, err := utils.ParseUintParam(c, "id", "staff member")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req staff.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update staff", "staff_id", staffID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.UpdateStaff(c.Request.Context(), facilityID, staffID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Staff member updated successfully", result)
}

// DeactivateStaff godoc
// @Summary Deactivate staff member
// @Description Deactivated staff are excluded from certification alert evaluation
// @Security Bearer
// @Tags staff
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param id path int true "Staff member ID"
// @Success 200 {object} utils.APIResponse{data=staff.StaffResponse} "Staff member deactivated"
// @Failure 404 {object} utils.APIResponse "Staff member not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/staff/{id}/deactivate [post]
func (h *StaffHandler) DeactivateStaff(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	staffID, err := utils.ParseUintParam(c, "id", "staff member")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.DeactivateStaff(c.Request.Context(), facilityID, staffID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Staff member deactivated", result)
}

// AddCertification godoc
// @Summary Add certification
// @Security Bearer
// @Tags staff
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param id path int true "Staff member ID"
// @Param request body staff.CreateCertificationRequest true "Certification data"
// @Success 201 {object} utils.APIResponse{data=staff.CertificationResponse} "Certification added successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Staff member not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/staff/{id}/certifications [post]
func (h *StaffHandler) AddCertification(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	staffID, err := utils.ParseUintParam(c, "id", "staff member")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req staff.CreateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add certification", "staff_id", staffID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.AddCertification(c.Request.Context(), facilityID, staffID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Certification added successfully")
}

// ListCertifications godoc
// @Summary List certifications
// @Security Bearer
// @Tags staff
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param id path int true "Staff member ID"
// @Success 200 {object} utils.APIResponse{data=[]staff.CertificationResponse} "Certifications retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Staff member not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/staff/{id}/certifications [get]
func (h *StaffHandler) ListCertifications(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	staffID, err := utils.ParseUintParam(c, "id", "staff member")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListCertifications(c.Request.Context(), facilityID, staffID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Certifications retrieved successfully", result)
}

// RenewCertification godoc
// @Summary Renew certification
// @Security Bearer
// @Tags staff
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param certId path int true "Certification ID"
// @Param request body staff.RenewCertificationRequest true "Renewal data"
// @Success 200 {object} utils.APIResponse{data=staff.CertificationResponse} "Certification renewed successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Certification not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/certifications/{certId}/renew [post]
func (h *StaffHandler) RenewCertification(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	certID, err := utils.ParseUintParam(c, "certId", "certification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req staff.RenewCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for renew certification", "cert_id", certID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.RenewCertification(c.Request.Context(), facilityID, certID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Certification renewed successfully", result)
}
