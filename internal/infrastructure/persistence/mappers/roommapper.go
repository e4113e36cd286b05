package mappers

import (
	"caretrack/internal/domain/room"
	"caretrack/internal/infrastructure/persistence/models"
)

// RoomMapper handles the conversion between Room domain entities and
// persistence models.
type RoomMapper interface {
	ToModel(r *room.Room) *models.RoomModel
	ToDomain(model *models.RoomModel) (*room.Room, error)
	ToDomainList(modelList []*models.RoomModel) ([]*room.Room, error)
}

type RoomMapperImpl struct{}

func NewRoomMapper() RoomMapper {
	return &RoomMapperImpl{}
}

func (m *RoomMapperImpl) ToModel(r *room.Room) *models.RoomModel {
	return &models.RoomModel{
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

func (m *RoomMapperImpl) ToDomain(model *models.RoomModel) (*room.Room, error) {
	ratio, err := room.ParseRatio(model.RequiredRatio)
	if err != nil {
		return nil, err
	}

	return room.ReconstructRoom(
		model.ID,
		model.FacilityID,
		model.Name,
		room.AgeGroup(model.AgeGroup),
		ratio,
		model.Capacity,
		room.Status(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *RoomMapperImpl) ToDomainList(modelList []*models.RoomModel) ([]*room.Room, error) {
	rooms := make([]*room.Room, 0, len(modelList))
	for _, model := range modelList {
		r, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return rooms, nil
}
