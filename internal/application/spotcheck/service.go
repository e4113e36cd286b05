package spotcheck

import (
	"context"
	"fmt"
	"time"

	roomdomain "caretrack/internal/domain/room"
	domain "caretrack/internal/domain/spotcheck"
	"caretrack/internal/shared/biztime"
	"caretrack/internal/shared/constants"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

const (
	defaultHistoryDays = 7
	maxHistoryDays     = 90
)

// Service validates and persists ratio spot-checks and answers the
// reminder-status and history queries.
type Service struct {
	checkRepo  domain.Repository
	roomRepo   roomdomain.Repository
	checkTimes []string
	logger     logger.Interface
}

func NewService(checkRepo domain.Repository, roomRepo roomdomain.Repository, checkTimes []string, logger logger.Interface) *Service {
	return &Service{
		checkRepo:  checkRepo,
		roomRepo:   roomRepo,
		checkTimes: checkTimes,
		logger:     logger,
	}
}

// CreateSpotCheck records one observation. When a room ID is supplied the
// room's name and required ratio are snapshotted from the room record;
// otherwise the caller must supply both.
func (s *Service) CreateSpotCheck(ctx context.Context, facilityID uint, req CreateSpotCheckRequest) (*SpotCheckResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	roomName := req.RoomName
	var ratio roomdomain.Ratio

	if req.RoomID != nil {
		entity, err := s.roomRepo.GetByID(ctx, *req.RoomID)
		if err != nil {
			s.logger.Errorw("failed to get room for spot check", "room_id", *req.RoomID, "error", err)
			return nil, fmt.Errorf("failed to get room: %w", err)
		}
		if entity == nil || entity.FacilityID() != facilityID {
			return nil, errors.NewNotFoundError("room not found")
		}
		if !entity.IsActive() {
			return nil, errors.NewValidationError("cannot log a spot check for an archived room")
		}
		roomName = entity.Name()
		ratio = entity.RequiredRatio()
	} else {
		if req.RequiredRatio == "" {
			return nil, errors.NewValidationError("required_ratio is required when room_id is not provided")
		}
		parsed, err := roomdomain.ParseRatio(req.RequiredRatio)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		ratio = parsed
	}

	check, err := domain.NewSpotCheck(
		facilityID,
		req.RoomID,
		roomName,
		ratio,
		req.StaffCount,
		req.ChildrenCount,
		domain.CheckMethod(req.CheckMethod),
		req.CheckMethodOther,
		req.CheckedByName,
		req.Notes,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.checkRepo.Create(ctx, check); err != nil {
		s.logger.Errorw("failed to persist spot check", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to create spot check: %w", err)
	}

	s.logger.Infow("spot check logged",
		"facility_id", facilityID,
		"room_name", check.RoomName(),
		"is_compliant", check.IsCompliant())

	return toSpotCheckResponse(check), nil
}

// ListToday returns the current business day's spot-checks.
func (s *Service) ListToday(ctx context.Context, facilityID uint) ([]*SpotCheckResponse, error) {
	today := biztime.DateString(biztime.NowUTC())

	checks, err := s.checkRepo.ListByFacilityAndDate(ctx, facilityID, today)
	if err != nil {
		s.logger.Errorw("failed to list today's spot checks", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to list spot checks: %w", err)
	}

	return toSpotCheckResponses(checks), nil
}

// History returns per-day compliance aggregates for the most recent N
// business days, today included.
func (s *Service) History(ctx context.Context, facilityID uint, days int) ([]domain.DailySummary, error) {
	if days <= 0 {
		days = defaultHistoryDays
	}
	if days > maxHistoryDays {
		days = maxHistoryDays
	}

	now := biztime.NowUTC()
	toDate := biztime.DateString(now)
	fromDate := biztime.DateString(now.Add(-time.Duration(days-1) * 24 * time.Hour))

	summaries, err := s.checkRepo.DailySummaries(ctx, facilityID, fromDate, toDate)
	if err != nil {
		s.logger.Errorw("failed to load spot check history", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to load spot check history: %w", err)
	}

	return summaries, nil
}

// ReminderStatus reports today's progress against the configured check
// schedule. next_check_due is null once the daily quota is met.
func (s *Service) ReminderStatus(ctx context.Context, facilityID uint) (*ReminderStatusResponse, error) {
	today := biztime.DateString(biztime.NowUTC())

	completed, err := s.checkRepo.CountByFacilityAndDate(ctx, facilityID, today)
	if err != nil {
		s.logger.Errorw("failed to count today's spot checks", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to count spot checks: %w", err)
	}

	resp := &ReminderStatusResponse{
		ChecksCompletedToday: completed,
		ChecksDueToday:       constants.SpotChecksDuePerDay,
		CheckTimes:           s.checkTimes,
	}

	if int(completed) < constants.SpotChecksDuePerDay && len(s.checkTimes) > 0 {
		idx := int(completed)
		if idx >= len(s.checkTimes) {
			idx = len(s.checkTimes) - 1
		}
		next := s.checkTimes[idx]
		resp.NextCheckDue = &next
	}

	return resp, nil
}
