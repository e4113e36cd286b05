package rules

import (
	"context"
	"fmt"

	"caretrack/internal/domain/alert"
	"caretrack/internal/domain/spotcheck"
	"caretrack/internal/shared/biztime"
	"caretrack/internal/shared/constants"
	"caretrack/internal/shared/logger"
)

// MissingSpotCheckRule raises one warning when fewer than the required
// number of spot-checks have been logged today, and auto-resolves the open
// alert once the daily quota is met.
type MissingSpotCheckRule struct {
	checkRepo spotcheck.Repository
	logger    logger.Interface
}

func NewMissingSpotCheckRule(checkRepo spotcheck.Repository, logger logger.Interface) *MissingSpotCheckRule {
	return &MissingSpotCheckRule{
		checkRepo: checkRepo,
		logger:    logger,
	}
}

func (r *MissingSpotCheckRule) Name() string {
	return "missing_spot_check"
}

func (r *MissingSpotCheckRule) Evaluate(ctx context.Context, facilityID uint, alerts alert.Repository) ([]*alert.Alert, error) {
	today := biztime.DateString(biztime.NowUTC())

	count, err := r.checkRepo.CountByFacilityAndDate(ctx, facilityID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's spot checks: %w", err)
	}

	existing, err := alerts.FindUnresolved(ctx, facilityID, alert.TypeMissingSpotCheck, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate alert: %w", err)
	}

	if int(count) >= constants.SpotChecksDuePerDay {
		// Only an alert raised during the current business day clears
		// itself; an earlier day's alert stays open for manual review.
		if existing != nil && biztime.DateString(existing.CreatedAt()) == today {
			if err := resolveWithHistory(ctx, alerts, existing); err != nil {
				return nil, fmt.Errorf("failed to auto-resolve spot check alert: %w", err)
			}
			r.logger.Infow("missing spot check alert auto-resolved",
				"facility_id", facilityID,
				"alert_id", existing.ID())
		}
		return nil, nil
	}

	if existing != nil {
		return nil, nil
	}

	a, err := alert.NewAlert(facilityID, alert.TypeMissingSpotCheck, alert.SeverityWarning,
		"Ratio spot-checks incomplete",
		fmt.Sprintf("Only %d of %d ratio spot-checks have been logged today.", count, constants.SpotChecksDuePerDay))
	if err != nil {
		return nil, fmt.Errorf("failed to build spot check alert: %w", err)
	}
	a.SetActionURL("/ratio-checks")

	if err := createWithHistory(ctx, alerts, a); err != nil {
		return nil, fmt.Errorf("failed to create spot check alert: %w", err)
	}

	r.logger.Infow("missing spot check alert raised",
		"facility_id", facilityID,
		"checks_today", count)

	return []*alert.Alert{a}, nil
}
