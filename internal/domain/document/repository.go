package document

import "context"

// Repository defines persistence operations for facility documents.
type Repository interface {
	Create(ctx context.Context, doc *Document) error
	Update(ctx context.Context, doc *Document) error
	GetByID(ctx context.Context, id uint) (*Document, error)
	ListByFacility(ctx context.Context, facilityID uint) ([]*Document, error)
	CountByFacilityAndStatus(ctx context.Context, facilityID uint, status Status) (int64, error)
}
