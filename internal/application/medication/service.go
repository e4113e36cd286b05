package medication

import (
	"context"
	"fmt"
	"strings"

	domain "caretrack/internal/domain/medication"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service records medication administrations. Logs are append-only.
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

func (s *Service) CreateLog(ctx context.Context, facilityID uint, req CreateMedicationLogRequest) (*MedicationLogResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	entity, err := domain.NewLog(
		facilityID,
		req.ChildName,
		req.MedicationName,
		req.Dosage,
		req.AdministeredBy,
		req.AdministeredAt,
		req.WitnessedBy,
		req.Notes,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		s.logger.Errorw("failed to create medication log", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to create medication log: %w", err)
	}

	s.logger.Infow("medication log created",
		"facility_id", facilityID,
		"log_id", entity.ID(),
		"medication", entity.MedicationName(),
	)
	return toLogResponse(entity), nil
}

func (s *Service) ListLogs(ctx context.Context, facilityID uint, childName string, limit, offset int) (*MedicationLogListResponse, error) {
	childName = strings.TrimSpace(childName)
	if childName != "" {
		logs, err := s.repo.ListByFacilityAndChild(ctx, facilityID, childName)
		if err != nil {
			s.logger.Errorw("failed to list medication logs", "facility_id", facilityID, "child_name", childName, "error", err)
			return nil, fmt.Errorf("failed to list medication logs: %w", err)
		}
		return &MedicationLogListResponse{
			Logs:   toLogResponses(logs),
			Total:  int64(len(logs)),
			Limit:  len(logs),
			Offset: 0,
		}, nil
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	logs, total, err := s.repo.ListByFacility(ctx, facilityID, limit, offset)
	if err != nil {
		s.logger.Errorw("failed to list medication logs", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to list medication logs: %w", err)
	}

	return &MedicationLogListResponse{
		Logs:   toLogResponses(logs),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
