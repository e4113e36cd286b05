package mappers

import (
	"caretrack/internal/domain/alert"
	"caretrack/internal/infrastructure/persistence/models"
)

// AlertMapper handles the conversion between Alert domain entities and
// persistence models.
type AlertMapper interface {
	ToModel(a *alert.Alert) *models.AlertModel
	ToDomain(model *models.AlertModel) *alert.Alert
	ToDomainList(modelList []*models.AlertModel) []*alert.Alert
	HistoryToModel(h *alert.History) *models.AlertHistoryModel
	HistoryToDomain(model *models.AlertHistoryModel) *alert.History
}

type AlertMapperImpl struct{}

func NewAlertMapper() AlertMapper {
	return &AlertMapperImpl{}
}

func (m *AlertMapperImpl) ToModel(a *alert.Alert) *models.AlertModel {
	return &models.AlertModel{
		ID:                 a.ID(),
		FacilityID:         a.FacilityID(),
		AlertType:          a.Type(),
		Severity:           a.Severity().String(),
		Title:              a.Title(),
		Message:            a.Message(),
		ActionURL:          a.ActionURL(),
		RelatedEntityType:  a.RelatedEntityType(),
		RelatedEntityID:    a.RelatedEntityID(),
		Acknowledged:       a.IsAcknowledged(),
		AcknowledgedAt:     a.AcknowledgedAt(),
		AcknowledgedByName: a.AcknowledgedByName(),
		Resolved:           a.IsResolved(),
		ResolvedAt:         a.ResolvedAt(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
}

func (m *AlertMapperImpl) ToDomain(model *models.AlertModel) *alert.Alert {
	return alert.ReconstructAlert(
		model.ID,
		model.FacilityID,
		model.AlertType,
		alert.Severity(model.Severity),
		model.Title,
		model.Message,
		model.ActionURL,
		model.RelatedEntityType,
		model.RelatedEntityID,
		model.Acknowledged,
		model.AcknowledgedAt,
		model.AcknowledgedByName,
		model.Resolved,
		model.ResolvedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *AlertMapperImpl) ToDomainList(modelList []*models.AlertModel) []*alert.Alert {
	alerts := make([]*alert.Alert, 0, len(modelList))
	for _, model := range modelList {
		alerts = append(alerts, m.ToDomain(model))
	}
	return alerts
}

func (m *AlertMapperImpl) HistoryToModel(h *alert.History) *models.AlertHistoryModel {
	return &models.AlertHistoryModel{
		ID:           h.ID(),
		AlertID:      h.AlertID(),
		Action:       string(h.Action()),
		ActionByName: h.ActionByName(),
		CreatedAt:    h.CreatedAt(),
	}
}

func (m *AlertMapperImpl) HistoryToDomain(model *models.AlertHistoryModel) *alert.History {
	return alert.ReconstructHistory(
		model.ID,
		model.AlertID,
		alert.HistoryAction(model.Action),
		model.ActionByName,
		model.CreatedAt,
	)
}
