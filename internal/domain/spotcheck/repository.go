package spotcheck

import "context"

// DailySummary aggregates one day's spot-checks for the history endpoint.
type DailySummary struct {
	CheckDate       string `json:"check_date"`
	TotalChecks     int    `json:"total_checks"`
	CompliantChecks int    `json:"compliant_checks"`
	Violations      int    `json:"violations"`
}

// Repository defines persistence operations for ratio spot-checks.
type Repository interface {
	Create(ctx context.Context, check *SpotCheck) error
	ListByFacilityAndDate(ctx context.Context, facilityID uint, checkDate string) ([]*SpotCheck, error)
	CountByFacilityAndDate(ctx context.Context, facilityID uint, checkDate string) (int64, error)
	DailySummaries(ctx context.Context, facilityID uint, fromDate, toDate string) ([]DailySummary, error)
}
