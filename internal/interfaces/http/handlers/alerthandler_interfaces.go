package handlers

import (
	"context"

	"caretrack/internal/application/alert"
)

// AlertService defines the application operations the alert handler depends on.
type AlertService interface {
	GenerateAlerts(ctx context.Context, facilityID uint) (*alert.GenerateAlertsResponse, error)
	ListActive(ctx context.Context, facilityID uint) ([]*alert.AlertResponse, error)
	Acknowledge(ctx context.Context, facilityID, alertID uint, req alert.AcknowledgeRequest) (*alert.AlertResponse, error)
	Resolve(ctx context.Context, facilityID, alertID uint, byName string) (*alert.AlertResponse, error)
	Summary(ctx context.Context, facilityID uint) (*alert.SummaryResponse, error)
	History(ctx context.Context, facilityID, alertID uint) ([]*alert.HistoryResponse, error)
}
