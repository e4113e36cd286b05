package alert

import "context"

// SeveritySummary counts alerts of one severity for the summary endpoint.
type SeveritySummary struct {
	Count          int64 `json:"count"`
	Unacknowledged int64 `json:"unacknowledged"`
}

// Repository defines persistence operations for alerts and their audit
// trail.
type Repository interface {
	Create(ctx context.Context, alert *Alert) error
	Update(ctx context.Context, alert *Alert) error
	GetByID(ctx context.Context, id uint) (*Alert, error)
	// FindUnresolved locates the open alert for a dedup tuple, nil when none
	// exists. A nil relatedEntityID matches alerts with no related entity.
	FindUnresolved(ctx context.Context, facilityID uint, alertType string, relatedEntityID *uint) (*Alert, error)
	// ListActiveByFacility returns unresolved alerts ordered by severity
	// rank, then newest first.
	ListActiveByFacility(ctx context.Context, facilityID uint) ([]*Alert, error)
	SummarizeByFacility(ctx context.Context, facilityID uint) (map[Severity]SeveritySummary, error)
	CreateHistory(ctx context.Context, history *History) error
	ListHistoryByAlert(ctx context.Context, alertID uint) ([]*History, error)
	// Transaction runs fn against a repository bound to a single database
	// transaction. The alert-generation pass uses this so a failing rule
	// rolls back the whole pass.
	Transaction(ctx context.Context, fn func(Repository) error) error
}
