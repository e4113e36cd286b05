package checklist

import (
	"context"
	"fmt"

	domain "caretrack/internal/domain/checklist"
	roomdomain "caretrack/internal/domain/room"
	"caretrack/internal/shared/biztime"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

// Service manages daily room checklists.
type Service struct {
	repo     domain.Repository
	roomRepo roomdomain.Repository
	logger   logger.Interface
}

func NewService(repo domain.Repository, roomRepo roomdomain.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:     repo,
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// CreateChecklist opens today's checklist for a room. One checklist exists
// per room per business day.
func (s *Service) CreateChecklist(ctx context.Context, facilityID uint, req CreateChecklistRequest) (*ChecklistResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		s.logger.Errorw("failed to get room for checklist", "room_id", req.RoomID, "error", err)
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil || room.FacilityID() != facilityID {
		return nil, errors.NewNotFoundError("room not found")
	}
	if !room.IsActive() {
		return nil, errors.NewValidationError("cannot open a checklist for an archived room")
	}

	entity, err := domain.NewChecklist(facilityID, req.RoomID, toDomainItems(req.Items))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to create checklist", "facility_id", facilityID, "room_id", req.RoomID, "error", err)
		return nil, fmt.Errorf("failed to create checklist: %w", err)
	}

	s.logger.Infow("checklist opened", "facility_id", facilityID, "room_id", req.RoomID, "checklist_id", entity.ID())
	return toChecklistResponse(entity), nil
}

// ListToday returns every checklist opened for the current business day.
func (s *Service) ListToday(ctx context.Context, facilityID uint) ([]*ChecklistResponse, error) {
	today := biztime.DateString(biztime.NowUTC())

	checklists, err := s.repo.ListByFacilityAndDate(ctx, facilityID, today)
	if err != nil {
		s.logger.Errorw("failed to list checklists", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}

	return toChecklistResponses(checklists), nil
}

func (s *Service) UpdateChecklist(ctx context.Context, facilityID, checklistID uint, req UpdateChecklistRequest) (*ChecklistResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	entity, err := s.getFacilityChecklist(ctx, facilityID, checklistID)
	if err != nil {
		return nil, err
	}

	if err := entity.UpdateItems(toDomainItems(req.Items)); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to update checklist", "checklist_id", checklistID, "error", err)
		return nil, fmt.Errorf("failed to update checklist: %w", err)
	}

	return toChecklistResponse(entity), nil
}

func (s *Service) CompleteChecklist(ctx context.Context, facilityID, checklistID uint, req CompleteChecklistRequest) (*ChecklistResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	entity, err := s.getFacilityChecklist(ctx, facilityID, checklistID)
	if err != nil {
		return nil, err
	}

	if err := entity.Complete(req.CompletedBy); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to complete checklist", "checklist_id", checklistID, "error", err)
		return nil, fmt.Errorf("failed to complete checklist: %w", err)
	}

	s.logger.Infow("checklist completed", "facility_id", facilityID, "checklist_id", checklistID, "completed_by", entity.CompletedBy())
	return toChecklistResponse(entity), nil
}

func (s *Service) getFacilityChecklist(ctx context.Context, facilityID, checklistID uint) (*domain.Checklist, error) {
	entity, err := s.repo.GetByID(ctx, checklistID)
	if err != nil {
		s.logger.Errorw("failed to get checklist", "checklist_id", checklistID, "error", err)
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}
	if entity == nil || entity.FacilityID() != facilityID {
		return nil, errors.NewNotFoundError("checklist not found")
	}
	return entity, nil
}
