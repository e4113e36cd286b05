package medication

import "context"

// Repository defines persistence operations for medication logs.
type Repository interface {
	Create(ctx context.Context, log *Log) error
	GetByID(ctx context.Context, id uint) (*Log, error)
	ListByFacility(ctx context.Context, facilityID uint, limit, offset int) ([]*Log, int64, error)
	ListByFacilityAndChild(ctx context.Context, facilityID uint, childName string) ([]*Log, error)
}
