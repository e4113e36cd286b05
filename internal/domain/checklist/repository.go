package checklist

import "context"

// Repository defines persistence operations for daily checklists.
type Repository interface {
	Create(ctx context.Context, checklist *Checklist) error
	Update(ctx context.Context, checklist *Checklist) error
	GetByID(ctx context.Context, id uint) (*Checklist, error)
	GetByRoomAndDate(ctx context.Context, roomID uint, checklistDate string) (*Checklist, error)
	ListByFacilityAndDate(ctx context.Context, facilityID uint, checklistDate string) ([]*Checklist, error)
}
