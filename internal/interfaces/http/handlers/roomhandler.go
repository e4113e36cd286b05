package handlers

import (
	"github.com/gin-gonic/gin"

	"caretrack/internal/application/room"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

type RoomHandler struct {
	service RoomService
	logger  logger.Interface
}

func NewRoomHandler(service RoomService, logger logger.Interface) *RoomHandler {
	return &RoomHandler{
		service: service,
		logger:  logger,
	}
}

// CreateRoom godoc
// @Summary Create room
// @Description Create a new room for the facility
// @Security Bearer
// @Tags rooms
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param request body room.CreateRoomRequest true "Room data"
// @Success 201 {object} utils.APIResponse{data=room.RoomResponse} "Room created successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 409 {object} utils.APIResponse "Room name already exists"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req room.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create room", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.CreateRoom(c.Request.Context(), facilityID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Room created successfully")
}

// ListRooms godoc
// @Summary List rooms
// @Description List the facility's rooms, optionally including archived ones
// @Security Bearer
// @Tags rooms
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param include_archived query bool false "Include archived rooms"
// @Success 200 {object} utils.APIResponse{data=[]room.RoomResponse} "Rooms retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	includeArchived := c.Query("include_archived") == "true"

	result, err := h.service.ListRooms(c.Request.Context(), facilityID, includeArchived)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Rooms retrieved successfully", result)
}

// UpdateRoom godoc
// @Summary Update room
// @Description Update a room's name, required ratio, or capacity
// @Security Bearer
// @Tags rooms
// @Accept json
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param id path int true "Room ID"
// @Param request body room.UpdateRoomRequest true "Updated room data"
// @Success 200 {object} utils.APIResponse{data=room.RoomResponse} "Room updated successfully"
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Room not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	roomID, err := utils.ParseUintParam(c, "id", "room")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req room.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update room", "room_id", roomID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.service.UpdateRoom(c.Request.Context(), facilityID, roomID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Room updated successfully", result)
}

// ArchiveRoom godoc
// @Summary Archive room
// @Description Archive a room so it no longer accepts spot-checks or checklists
// @Security Bearer
// @Tags rooms
// @Produce json
// @Param facilityId path int true "Facility ID"
// @Param id path int true "Room ID"
// @Success 200 {object} utils.APIResponse{data=room.RoomResponse} "Room archived successfully"
// @Failure 404 {object} utils.APIResponse "Room not found"
// @Failure 409 {object} utils.APIResponse "Room already archived"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /facilities/{facilityId}/rooms/{id}/archive [post]
func (h *RoomHandler) ArchiveRoom(c *gin.Context) {
	facilityID, err := facilityIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	roomID, err := utils.ParseUintParam(c, "id", "room")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ArchiveRoom(c.Request.Context(), facilityID, roomID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Room archived successfully", result)
}
