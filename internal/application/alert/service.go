package alert

import (
	"context"
	"fmt"

	"caretrack/internal/application/alert/rules"
	domain "caretrack/internal/domain/alert"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

// Service manages the alert lifecycle and runs the rule evaluators.
type Service struct {
	repo   domain.Repository
	rules  []rules.Rule
	logger logger.Interface
}

func NewService(repo domain.Repository, ruleSet []rules.Rule, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		rules:  ruleSet,
		logger: logger,
	}
}

// GenerateAlerts runs every rule evaluator for the facility inside one
// transaction: either the whole pass commits or none of it does.
func (s *Service) GenerateAlerts(ctx context.Context, facilityID uint) (*GenerateAlertsResponse, error) {
	var created []*domain.Alert

	err := s.repo.Transaction(ctx, func(txRepo domain.Repository) error {
		for _, rule := range s.rules {
			alerts, err := rule.Evaluate(ctx, facilityID, txRepo)
			if err != nil {
				s.logger.Errorw("alert rule failed",
					"facility_id", facilityID,
					"rule", rule.Name(),
					"error", err)
				return fmt.Errorf("rule %s: %w", rule.Name(), err)
			}
			created = append(created, alerts...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("alert generation failed: %w", err)
	}

	s.logger.Infow("alert generation completed",
		"facility_id", facilityID,
		"generated", len(created))

	return &GenerateAlertsResponse{
		Generated: len(created),
		Alerts:    toAlertResponses(created),
	}, nil
}

// ListActive returns unresolved alerts, critical first, newest first within
// a severity.
func (s *Service) ListActive(ctx context.Context, facilityID uint) ([]*AlertResponse, error) {
	alerts, err := s.repo.ListActiveByFacility(ctx, facilityID)
	if err != nil {
		s.logger.Errorw("failed to list active alerts", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	return toAlertResponses(alerts), nil
}

func (s *Service) Acknowledge(ctx context.Context, facilityID, alertID uint, req AcknowledgeRequest) (*AlertResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	a, err := s.getFacilityAlert(ctx, facilityID, alertID)
	if err != nil {
		return nil, err
	}

	if err := a.Acknowledge(req.AcknowledgedByName); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Errorw("failed to persist alert acknowledgement", "alert_id", alertID, "error", err)
		return nil, fmt.Errorf("failed to acknowledge alert: %w", err)
	}

	history := domain.NewHistory(a.ID(), domain.HistoryActionAcknowledged, req.AcknowledgedByName)
	if err := s.repo.CreateHistory(ctx, history); err != nil {
		s.logger.Errorw("failed to record alert acknowledgement", "alert_id", alertID, "error", err)
		return nil, fmt.Errorf("failed to record acknowledgement: %w", err)
	}

	s.logger.Infow("alert acknowledged", "alert_id", alertID, "by", req.AcknowledgedByName)
	return toAlertResponse(a), nil
}

func (s *Service) Resolve(ctx context.Context, facilityID, alertID uint, byName string) (*AlertResponse, error) {
	a, err := s.getFacilityAlert(ctx, facilityID, alertID)
	if err != nil {
		return nil, err
	}

	if err := a.Resolve(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Errorw("failed to persist alert resolution", "alert_id", alertID, "error", err)
		return nil, fmt.Errorf("failed to resolve alert: %w", err)
	}

	if byName == "" {
		byName = rules.SystemActor
	}
	history := domain.NewHistory(a.ID(), domain.HistoryActionResolved, byName)
	if err := s.repo.CreateHistory(ctx, history); err != nil {
		s.logger.Errorw("failed to record alert resolution", "alert_id", alertID, "error", err)
		return nil, fmt.Errorf("failed to record resolution: %w", err)
	}

	s.logger.Infow("alert resolved", "alert_id", alertID, "by", byName)
	return toAlertResponse(a), nil
}

func (s *Service) Summary(ctx context.Context, facilityID uint) (*SummaryResponse, error) {
	summary, err := s.repo.SummarizeByFacility(ctx, facilityID)
	if err != nil {
		s.logger.Errorw("failed to summarize alerts", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to summarize alerts: %w", err)
	}

	return &SummaryResponse{
		Critical: SeverityCounts(summary[domain.SeverityCritical]),
		Warning:  SeverityCounts(summary[domain.SeverityWarning]),
		Info:     SeverityCounts(summary[domain.SeverityInfo]),
	}, nil
}

func (s *Service) History(ctx context.Context, facilityID, alertID uint) ([]*HistoryResponse, error) {
	if _, err := s.getFacilityAlert(ctx, facilityID, alertID); err != nil {
		return nil, err
	}

	histories, err := s.repo.ListHistoryByAlert(ctx, alertID)
	if err != nil {
		s.logger.Errorw("failed to list alert history", "alert_id", alertID, "error", err)
		return nil, fmt.Errorf("failed to list alert history: %w", err)
	}

	return toHistoryResponses(histories), nil
}

func (s *Service) getFacilityAlert(ctx context.Context, facilityID, alertID uint) (*domain.Alert, error) {
	a, err := s.repo.GetByID(ctx, alertID)
	if err != nil {
		s.logger.Errorw("failed to get alert", "alert_id", alertID, "error", err)
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	if a == nil || a.FacilityID() != facilityID {
		return nil, errors.NewNotFoundError("alert not found")
	}
	return a, nil
}
