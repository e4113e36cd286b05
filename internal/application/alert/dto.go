package alert

import (
	"time"

	domain "caretrack/internal/domain/alert"
)

type AlertResponse struct {
	ID                 uint       `json:"id"`
	FacilityID         uint       `json:"facility_id"`
	AlertType          string     `json:"alert_type"`
	Severity           string     `json:"severity"`
	Title              string     `json:"title"`
	Message            string     `json:"message"`
	ActionURL          string     `json:"action_url,omitempty"`
	RelatedEntityType  *string    `json:"related_entity_type"`
	RelatedEntityID    *uint      `json:"related_entity_id"`
	Acknowledged       bool       `json:"acknowledged"`
	AcknowledgedAt     *time.Time `json:"acknowledged_at"`
	AcknowledgedByName *string    `json:"acknowledged_by_name"`
	Resolved           bool       `json:"resolved"`
	ResolvedAt         *time.Time `json:"resolved_at"`
	CreatedAt          time.Time  `json:"created_at"`
}

type GenerateAlertsResponse struct {
	Generated int              `json:"generated"`
	Alerts    []*AlertResponse `json:"alerts"`
}

type SummaryResponse struct {
	Critical SeverityCounts `json:"critical"`
	Warning  SeverityCounts `json:"warning"`
	Info     SeverityCounts `json:"info"`
}

type SeverityCounts struct {
	Count          int64 `json:"count"`
	Unacknowledged int64 `json:"unacknowledged"`
}

type HistoryResponse struct {
	ID           uint      `json:"id"`
	AlertID      uint      `json:"alert_id"`
	Action       string    `json:"action"`
	ActionByName string    `json:"action_by_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type AcknowledgeRequest struct {
	AcknowledgedByName string `json:"acknowledged_by_name" validate:"required,max=100"`
}

func toAlertResponse(a *domain.Alert) *AlertResponse {
	return &AlertResponse{
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
	}
}

func toAlertResponses(alerts []*domain.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		responses = append(responses, toAlertResponse(a))
	}
	return responses
}

func toHistoryResponses(histories []*domain.History) []*HistoryResponse {
	responses := make([]*HistoryResponse, 0, len(histories))
	for _, h := range histories {
		responses = append(responses, &HistoryResponse{
			ID:           h.ID(),
			AlertID:      h.AlertID(),
			Action:       string(h.Action()),
			ActionByName: h.ActionByName(),
			CreatedAt:    h.CreatedAt(),
		})
	}
	return responses
}
