package checklist

import (
	"time"

	domain "caretrack/internal/domain/checklist"
)

type ChecklistItemRequest struct {
	Label string `json:"label" validate:"required,max=200"`
	Done  bool   `json:"done"`
}

type CreateChecklistRequest struct {
	RoomID uint                   `json:"room_id" validate:"required"`
	Items  []ChecklistItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateChecklistRequest struct {
	Items []ChecklistItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CompleteChecklistRequest struct {
	CompletedBy string `json:"completed_by" validate:"required,max=200"`
}

type ChecklistResponse struct {
	ID            uint          `json:"id"`
	FacilityID    uint          `json:"facility_id"`
	RoomID        uint          `json:"room_id"`
	ChecklistDate string        `json:"checklist_date"`
	Items         []domain.Item `json:"items"`
	CompletedBy   string        `json:"completed_by,omitempty"`
	CompletedAt   *time.Time    `json:"completed_at"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func toDomainItems(items []ChecklistItemRequest) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		out = append(out, domain.Item{Label: item.Label, Done: item.Done})
	}
	return out
}

func toChecklistResponse(c *domain.Checklist) *ChecklistResponse {
	return &ChecklistResponse{
		ID:            c.ID(),
		FacilityID:    c.FacilityID(),
		RoomID:        c.RoomID(),
		ChecklistDate: c.ChecklistDate(),
		Items:         c.Items(),
		CompletedBy:   c.CompletedBy(),
		CompletedAt:   c.CompletedAt(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

func toChecklistResponses(checklists []*domain.Checklist) []*ChecklistResponse {
	responses := make([]*ChecklistResponse, 0, len(checklists))
	for _, c := range checklists {
		responses = append(responses, toChecklistResponse(c))
	}
	return responses
}
