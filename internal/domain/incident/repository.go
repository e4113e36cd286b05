package incident

import "context"

// Repository defines persistence operations for incident reports.
type Repository interface {
	Create(ctx context.Context, report *Report) error
	Update(ctx context.Context, report *Report) error
	GetByID(ctx context.Context, id uint) (*Report, error)
	ListByFacility(ctx context.Context, facilityID uint, limit, offset int) ([]*Report, int64, error)
}
