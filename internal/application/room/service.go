package room

import (
	"context"
	"fmt"

	domain "caretrack/internal/domain/room"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

// Service handles room management for a facility.
type Service struct {
	repo   domain.Repository
	logger logger.Interface
}

func NewService(repo domain.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateRoom(ctx context.Context, facilityID uint, req CreateRoomRequest) (*RoomResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var ratio domain.Ratio
	if req.RequiredRatio != "" {
		parsed, err := domain.ParseRatio(req.RequiredRatio)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		ratio = parsed
	}

	entity, err := domain.NewRoom(facilityID, req.Name, domain.AgeGroup(req.AgeGroup), ratio, req.Capacity)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to create room", "facility_id", facilityID, "name", req.Name, "error", err)
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	s.logger.Infow("room created", "facility_id", facilityID, "room_id", entity.ID(), "name", entity.Name())
	return toRoomResponse(entity), nil
}

func (s *Service) ListRooms(ctx context.Context, facilityID uint, includeArchived bool) ([]*RoomResponse, error) {
	rooms, err := s.repo.ListByFacility(ctx, facilityID, includeArchived)
	if err != nil {
		s.logger.Errorw("failed to list rooms", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return toRoomResponses(rooms), nil
}

func (s *Service) UpdateRoom(ctx context.Context, facilityID, roomID uint, req UpdateRoomRequest) (*RoomResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	entity, err := s.getFacilityRoom(ctx, facilityID, roomID)
	if err != nil {
		return nil, err
	}

	var ratio domain.Ratio
	if req.RequiredRatio != "" {
		parsed, err := domain.ParseRatio(req.RequiredRatio)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		ratio = parsed
	}

	if err := entity.UpdateDetails(req.Name, ratio, req.Capacity); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to update room", "room_id", roomID, "error", err)
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	return toRoomResponse(entity), nil
}

func (s *Service) ArchiveRoom(ctx context.Context, facilityID, roomID uint) (*RoomResponse, error) {
	entity, err := s.getFacilityRoom(ctx, facilityID, roomID)
	if err != nil {
		return nil, err
	}

	if err := entity.Archive(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to archive room", "room_id", roomID, "error", err)
		return nil, fmt.Errorf("failed to archive room: %w", err)
	}

	s.logger.Infow("room archived", "facility_id", facilityID, "room_id", roomID)
	return toRoomResponse(entity), nil
}

func (s *Service) getFacilityRoom(ctx context.Context, facilityID, roomID uint) (*domain.Room, error) {
	entity, err := s.repo.GetByID(ctx, roomID)
	if err != nil {
		s.logger.Errorw("failed to get room", "room_id", roomID, "error", err)
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if entity == nil || entity.FacilityID() != facilityID {
		return nil, errors.NewNotFoundError("room not found")
	}
	return entity, nil
}
