package incident

import (
	"time"

	domain "caretrack/internal/domain/incident"
)

type CreateIncidentRequest struct {
	RoomID      *uint                  `json:"room_id"`
	ChildName   string                 `json:"child_name" validate:"required,max=200"`
	OccurredAt  time.Time              `json:"occurred_at" validate:"required"`
	Description string                 `json:"description" validate:"required"`
	Severity    string                 `json:"severity" validate:"required,oneof=minor moderate serious"`
	ReportedBy  string                 `json:"reported_by" validate:"required,max=200"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type IncidentResponse struct {
	ID             uint                   `json:"id"`
	FacilityID     uint                   `json:"facility_id"`
	RoomID         *uint                  `json:"room_id"`
	ChildName      string                 `json:"child_name"`
	OccurredAt     time.Time              `json:"occurred_at"`
	Description    string                 `json:"description"`
	Severity       string                 `json:"severity"`
	ReportedBy     string                 `json:"reported_by"`
	ParentNotified bool                   `json:"parent_notified"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

type IncidentListResponse struct {
	Incidents []*IncidentResponse `json:"incidents"`
	Total     int64               `json:"total"`
	Limit     int                 `json:"limit"`
	Offset    int                 `json:"offset"`
}

func toIncidentResponse(r *domain.Report) *IncidentResponse {
	return &IncidentResponse{
		ID:             r.ID(),
		FacilityID:     r.FacilityID(),
		RoomID:         r.RoomID(),
		ChildName:      r.ChildName(),
		OccurredAt:     r.OccurredAt(),
		Description:    r.Description(),
		Severity:       r.Severity().String(),
		ReportedBy:     r.ReportedBy(),
		ParentNotified: r.IsParentNotified(),
		Metadata:       r.Metadata(),
		CreatedAt:      r.CreatedAt(),
	}
}

func toIncidentResponses(reports []*domain.Report) []*IncidentResponse {
	responses := make([]*IncidentResponse, 0, len(reports))
	for _, r := range reports {
		responses = append(responses, toIncidentResponse(r))
	}
	return responses
}
