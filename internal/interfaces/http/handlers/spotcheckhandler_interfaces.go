package handlers

import (
	"context"

	"caretrack/internal/application/spotcheck"
	spotcheckdomain "caretrack/internal/domain/spotcheck"
)

// SpotCheckService defines the application operations the spot-check handler
// depends on.
type SpotCheckService interface {
	CreateSpotCheck(ctx context.Context, facilityID uint, req spotcheck.CreateSpotCheckRequest) (*spotcheck.SpotCheckResponse, error)
	ListToday(ctx context.Context, facilityID uint) ([]*spotcheck.SpotCheckResponse, error)
	History(ctx context.Context, facilityID uint, days int) ([]spotcheckdomain.DailySummary, error)
	ReminderStatus(ctx context.Context, facilityID uint) (*spotcheck.ReminderStatusResponse, error)
}
