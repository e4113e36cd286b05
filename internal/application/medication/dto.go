package medication

import (
	"time"

	domain "caretrack/internal/domain/medication"
)

type CreateMedicationLogRequest struct {
	ChildName      string    `json:"child_name" validate:"required,max=200"`
	MedicationName string    `json:"medication_name" validate:"required,max=200"`
	Dosage         string    `json:"dosage" validate:"required,max=100"`
	AdministeredBy string    `json:"administered_by" validate:"required,max=200"`
	AdministeredAt time.Time `json:"administered_at" validate:"required"`
	WitnessedBy    string    `json:"witnessed_by" validate:"omitempty,max=200"`
	Notes          string    `json:"notes" validate:"omitempty,max=1000"`
}

type MedicationLogResponse struct {
	ID             uint      `json:"id"`
	FacilityID     uint      `json:"facility_id"`
	ChildName      string    `json:"child_name"`
	MedicationName string    `json:"medication_name"`
	Dosage         string    `json:"dosage"`
	AdministeredBy string    `json:"administered_by"`
	AdministeredAt time.Time `json:"administered_at"`
	WitnessedBy    string    `json:"witnessed_by,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type MedicationLogListResponse struct {
	Logs   []*MedicationLogResponse `json:"logs"`
	Total  int64                    `json:"total"`
	Limit  int                      `json:"limit"`
	Offset int                      `json:"offset"`
}

func toLogResponse(l *domain.Log) *MedicationLogResponse {
	return &MedicationLogResponse{
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

func toLogResponses(logs []*domain.Log) []*MedicationLogResponse {
	responses := make([]*MedicationLogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, toLogResponse(l))
	}
	return responses
}
