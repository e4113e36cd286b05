package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"caretrack/internal/domain/incident"
	"caretrack/internal/infrastructure/persistence/models"
)

// IncidentMapper handles the conversion between incident Report domain
// entities and persistence models.
type IncidentMapper interface {
	ToModel(r *incident.Report) (*models.IncidentReportModel, error)
	ToDomain(model *models.IncidentReportModel) (*incident.Report, error)
	ToDomainList(modelList []*models.IncidentReportModel) ([]*incident.Report, error)
}

type IncidentMapperImpl struct{}

func NewIncidentMapper() IncidentMapper {
	return &IncidentMapperImpl{}
}

func (m *IncidentMapperImpl) ToModel(r *incident.Report) (*models.IncidentReportModel, error) {
	model := &models.IncidentReportModel{
		ID:             r.ID(),
		FacilityID:     r.FacilityID(),
		RoomID:         r.RoomID(),
		ChildName:      r.ChildName(),
		OccurredAt:     r.OccurredAt(),
		Description:    r.Description(),
		Severity:       r.Severity().String(),
		ReportedBy:     r.ReportedBy(),
		ParentNotified: r.IsParentNotified(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}

	if meta := r.Metadata(); len(meta) > 0 {
		raw, err := json.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal incident metadata: %w", err)
		}
		model.Metadata = datatypes.JSON(raw)
	}

	return model, nil
}

func (m *IncidentMapperImpl) ToDomain(model *models.IncidentReportModel) (*incident.Report, error) {
	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal incident metadata (id=%d): %w", model.ID, err)
		}
	}

	return incident.ReconstructReport(
		model.ID,
		model.FacilityID,
		model.RoomID,
		model.ChildName,
		model.OccurredAt,
		model.Description,
		incident.Severity(model.Severity),
		model.ReportedBy,
		model.ParentNotified,
		metadata,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *IncidentMapperImpl) ToDomainList(modelList []*models.IncidentReportModel) ([]*incident.Report, error) {
	reports := make([]*incident.Report, 0, len(modelList))
	for _, model := range modelList {
		r, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}
