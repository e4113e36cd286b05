package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"caretrack/internal/domain/checklist"
	"caretrack/internal/infrastructure/persistence/models"
)

// ChecklistMapper handles the conversion between Checklist domain entities
// and persistence models.
type ChecklistMapper interface {
	ToModel(c *checklist.Checklist) (*models.DailyChecklistModel, error)
	ToDomain(model *models.DailyChecklistModel) (*checklist.Checklist, error)
	ToDomainList(modelList []*models.DailyChecklistModel) ([]*checklist.Checklist, error)
}

type ChecklistMapperImpl struct{}

func NewChecklistMapper() ChecklistMapper {
	return &ChecklistMapperImpl{}
}

func (m *ChecklistMapperImpl) ToModel(c *checklist.Checklist) (*models.DailyChecklistModel, error) {
	raw, err := json.Marshal(c.Items())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal checklist items: %w", err)
	}

	return &models.DailyChecklistModel{
		ID:            c.ID(),
		FacilityID:    c.FacilityID(),
		RoomID:        c.RoomID(),
		ChecklistDate: c.ChecklistDate(),
		Items:         datatypes.JSON(raw),
		CompletedBy:   c.CompletedBy(),
		CompletedAt:   c.CompletedAt(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}, nil
}

func (m *ChecklistMapperImpl) ToDomain(model *models.DailyChecklistModel) (*checklist.Checklist, error) {
	var items []checklist.Item
	if len(model.Items) > 0 {
		if err := json.Unmarshal(model.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal checklist items (id=%d): %w", model.ID, err)
		}
	}

	return checklist.ReconstructChecklist(
		model.ID,
		model.FacilityID,
		model.RoomID,
		model.ChecklistDate,
		items,
		model.CompletedBy,
		model.CompletedAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *ChecklistMapperImpl) ToDomainList(modelList []*models.DailyChecklistModel) ([]*checklist.Checklist, error) {
	checklists := make([]*checklist.Checklist, 0, len(modelList))
	for _, model := range modelList {
		c, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		checklists = append(checklists, c)
	}
	return checklists, nil
}
