package mappers

import (
	"caretrack/internal/domain/medication"
	"caretrack/internal/infrastructure/persistence/models"
)

// MedicationMapper handles the conversion between medication Log domain
// entities and persistence models.
type MedicationMapper interface {
	ToModel(l *medication.Log) *models.MedicationLogModel
	ToDomain(model *models.MedicationLogModel) *medication.Log
	ToDomainList(modelList []*models.MedicationLogModel) []*medication.Log
}

type MedicationMapperImpl struct{}

func NewMedicationMapper() MedicationMapper {
	return &MedicationMapperImpl{}
}

func (m *MedicationMapperImpl) ToModel(l *medication.Log) *models.MedicationLogModel {
	return &models.MedicationLogModel{
		ID:             l.ID(),
		FacilityID:     l.FacilityID(),
		ChildName:      l.ChildName(),
		MedicationName: l.MedicationName(),
		Dosage:         l.Dosage(),
		AdministeredBy: l.AdministeredBy(),
		AdministeredAt: l.AdministeredAt(),
		WitnessedBy:    l.WitnessedBy(),
		Notes:          l.Notes(),
		CreatedAt:      l.CreatedAt(),
	}
}

func (m *MedicationMapperImpl) ToDomain(model *models.MedicationLogModel) *medication.Log {
	return medication.ReconstructLog(
		model.ID,
		model.FacilityID,
		model.ChildName,
		model.MedicationName,
		model.Dosage,
		model.AdministeredBy,
		model.AdministeredAt,
		model.WitnessedBy,
		model.Notes,
		model.CreatedAt,
	)
}

func (m *MedicationMapperImpl) ToDomainList(modelList []*models.MedicationLogModel) []*medication.Log {
	logs := make([]*medication.Log, 0, len(modelList))
	for _, model := range modelList {
		logs = append(logs, m.ToDomain(model))
	}
	return logs
}
