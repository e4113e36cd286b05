package handlers

import (
	"context"

	"caretrack/internal/application/room"
)

// RoomService defines the application operations the room handler depends on.
type RoomService interface {
	CreateRoom(ctx context.Context, facilityID uint, req room.CreateRoomRequest) (*room.RoomResponse, error)
	ListRooms(ctx context.Context, facilityID uint, includeArchived bool) ([]*room.RoomResponse, error)
	UpdateRoom(ctx context.Context, facilityID, roomID uint, req room.UpdateRoomRequest) (*room.RoomResponse, error)
	ArchiveRoom(ctx context.Context, facilityID, roomID uint) (*room.RoomResponse, error)
}
