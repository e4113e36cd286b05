package room

import (
	"time"

	domain "caretrack/internal/domain/room"
)

type CreateRoomRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	AgeGroup      string `json:"age_group" validate:"required,oneof=infant toddler preschool school_age mixed"`
	RequiredRatio string `json:"required_ratio" validate:"omitempty,max=10"`
	Capacity      int    `json:"capacity" validate:"gte=0"`
}

type UpdateRoomRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	RequiredRatio string `json:"required_ratio" validate:"omitempty,max=10"`
	Capacity      int    `json:"capacity" validate:"gte=0"`
}

type RoomResponse struct {
	ID            uint      `json:"id"`
	FacilityID    uint      `json:"facility_id"`
	Name          string    `json:"name"`
	AgeGroup      string    `json:"age_group"`
	RequiredRatio string    `json:"required_ratio"`
	Capacity      int       `json:"capacity"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toRoomResponse(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:            r.ID(),
		FacilityID:    r.FacilityID(),
		Name:          r.Name(),
		AgeGroup:      r.AgeGroup().String(),
		RequiredRatio: r.RequiredRatio().String(),
		Capacity:      r.Capacity(),
		Status:        r.Status().String(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

func toRoomResponses(rooms []*domain.Room) []*RoomResponse {
	responses := make([]*RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		responses = append(responses, toRoomResponse(r))
	}
	return responses
}
