package rules

import (
	"context"
	"fmt"

	"caretrack/internal/domain/alert"
	"caretrack/internal/domain/document"
	"caretrack/internal/shared/logger"
)

// documentStatusRule raises a single summary alert when any document in the
// facility carries the watched status, and auto-resolves the open alert
// once no documents carry it. Missing and expired documents are two
// instances of this rule.
type documentStatusRule struct {
	name      string
	docRepo   document.Repository
	status    document.Status
	alertType string
	title     string
	logger    logger.Interface
}

func NewMissingDocumentsRule(docRepo document.Repository, logger logger.Interface) Rule {
	return &documentStatusRule{
		name:      "missing_documents",
		docRepo:   docRepo,
		status:    document.StatusMissing,
		alertType: alert.TypeMissingDocuments,
		title:     "Required documents missing",
		logger:    logger,
	}
}

func NewExpiredDocumentsRule(docRepo document.Repository, logger logger.Interface) Rule {
	return &documentStatusRule{
		name:      "expired_documents",
		docRepo:   docRepo,
		status:    document.StatusExpired,
		alertType: alert.TypeExpiredDocuments,
		title:     "Documents expired",
		logger:    logger,
	}
}

func (r *documentStatusRule) Name() string {
	return r.name
}

func (r *documentStatusRule) Evaluate(ctx context.Context, facilityID uint, alerts alert.Repository) ([]*alert.Alert, error) {
	count, err := r.docRepo.CountByFacilityAndStatus(ctx, facilityID, r.status)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s documents: %w", r.status, err)
	}

	existing, err := alerts.FindUnresolved(ctx, facilityID, r.alertType, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate alert: %w", err)
	}

	if count == 0 {
		if existing != nil {
			if err := resolveWithHistory(ctx, alerts, existing); err != nil {
				return nil, fmt.Errorf("failed to auto-resolve document alert: %w", err)
			}
			r.logger.Infow("document alert auto-resolved",
				"facility_id", facilityID,
				"alert_type", r.alertType,
				"alert_id", existing.ID())
		}
		return nil, nil
	}

	if existing != nil {
		return nil, nil
	}

	a, err := alert.NewAlert(facilityID, r.alertType, alert.SeverityCritical,
		r.title,
		fmt.Sprintf("%d document(s) have status %q.", count, r.status))
	if err != nil {
		return nil, fmt.Errorf("failed to build document alert: %w", err)
	}
	a.SetActionURL("/documents")

	if err := createWithHistory(ctx, alerts, a); err != nil {
		return nil, fmt.Errorf("failed to create document alert: %w", err)
	}

	r.logger.Infow("document alert raised",
		"facility_id", facilityID,
		"alert_type", r.alertType,
		"count", count)

	return []*alert.Alert{a}, nil
}
