package mappers

import (
	"caretrack/internal/domain/room"
	"caretrack/internal/domain/spotcheck"
	"caretrack/internal/infrastructure/persistence/models"
)

// SpotCheckMapper handles the conversion between SpotCheck domain entities
// and persistence models.
type SpotCheckMapper interface {
	ToModel(s *spotcheck.SpotCheck) *models.SpotCheckModel
	ToDomain(model *models.SpotCheckModel) (*spotcheck.SpotCheck, error)
	ToDomainList(modelList []*models.SpotCheckModel) ([]*spotcheck.SpotCheck, error)
}

type SpotCheckMapperImpl struct{}

func NewSpotCheckMapper() SpotCheckMapper {
	return &SpotCheckMapperImpl{}
}

func (m *SpotCheckMapperImpl) ToModel(s *spotcheck.SpotCheck) *models.SpotCheckModel {
	model := &models.SpotCheckModel{
		ID:            s.ID(),
		FacilityID:    s.FacilityID(),
		RoomID:        s.RoomID(),
		RoomName:      s.RoomName(),
		CheckDate:     s.CheckDate(),
		CheckTime:     s.CheckTime(),
		ChildrenCount: s.ChildrenCount(),
		StaffCount:    s.StaffCount(),
		RequiredRatio: s.RequiredRatio().String(),
		IsCompliant:   s.IsCompliant(),
		CheckMethod:   s.CheckMethod().String(),
		CheckedByName: s.CheckedByName(),
		Notes:         s.Notes(),
		CreatedAt:     s.CreatedAt(),
	}

	if other := s.CheckMethodOther(); other != "" {
		model.CheckMethodOther = &other
	}

	return model
}

func (m *SpotCheckMapperImpl) ToDomain(model *models.SpotCheckModel) (*spotcheck.SpotCheck, error) {
	ratio, err := room.ParseRatio(model.RequiredRatio)
	if err != nil {
		return nil, err
	}

	var methodOther string
	if model.CheckMethodOther != nil {
		methodOther = *model.CheckMethodOther
	}

	return spotcheck.ReconstructSpotCheck(
		model.ID,
		model.FacilityID,
		model.RoomID,
		model.RoomName,
		model.CheckDate,
		model.CheckTime,
		model.ChildrenCount,
		model.StaffCount,
		ratio,
		model.IsCompliant,
		spotcheck.CheckMethod(model.CheckMethod),
		methodOther,
		model.CheckedByName,
		model.Notes,
		model.CreatedAt,
	), nil
}

func (m *SpotCheckMapperImpl) ToDomainList(modelList []*models.SpotCheckModel) ([]*spotcheck.SpotCheck, error) {
	checks := make([]*spotcheck.SpotCheck, 0, len(modelList))
	for _, model := range modelList {
		s, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		checks = append(checks, s)
	}
	return checks, nil
}
