package incident

import (
	"context"
	"fmt"

	domain "caretrack/internal/domain/incident"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/sanitize"
	"caretrack/internal/shared/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service records and lists incident reports.
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

func (s *Service) CreateIncident(ctx context.Context, facilityID uint, req CreateIncidentRequest) (*IncidentResponse, error) {
	req.ChildName = sanitize.Text(req.ChildName)
	req.Description = sanitize.Text(req.Description)
	req.ReportedBy = sanitize.Text(req.ReportedBy)

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	entity, err := domain.NewReport(
		facilityID,
		req.RoomID,
		req.ChildName,
		req.OccurredAt,
		req.Description,
		domain.Severity(req.Severity),
		req.ReportedBy,
		req.Metadata,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		s.logger.Errorw("failed to create incident report", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to create incident report: %w", err)
	}

	s.logger.Infow("incident report created",
		"facility_id", facilityID,
		"incident_id", entity.ID(),
		"severity", entity.Severity(),
	)
	return toIncidentResponse(entity), nil
}

func (s *Service) ListIncidents(ctx context.Context, facilityID uint, limit, offset int) (*IncidentListResponse, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	reports, total, err := s.repo.ListByFacility(ctx, facilityID, limit, offset)
	if err != nil {
		s.logger.Errorw("failed to list incident reports", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to list incident reports: %w", err)
	}

	return &IncidentListResponse{
		Incidents: toIncidentResponses(reports),
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

func (s *Service) MarkParentNotified(ctx context.Context, facilityID, incidentID uint) (*IncidentResponse, error) {
	entity, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		s.logger.Errorw("failed to get incident report", "incident_id", incidentID, "error", err)
		return nil, fmt.Errorf("failed to get incident report: %w", err)
	}
	if entity == nil || entity.FacilityID() != facilityID {
		return nil, errors.NewNotFoundError("incident report not found")
	}

	entity.MarkParentNotified()

	if err := s.repo.Update(ctx, entity); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to update incident report", "incident_id", incidentID, "error", err)
		return nil, fmt.Errorf("failed to update incident report: %w", err)
	}

	return toIncidentResponse(entity), nil
}
