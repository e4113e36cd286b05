package room

import "context"

// Repository defines persistence operations for rooms.
type Repository interface {
	Create(ctx context.Context, room *Room) error
	Update(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id uint) (*Room, error)
	ListByFacility(ctx context.Context, facilityID uint, includeArchived bool) ([]*Room, error)
}
