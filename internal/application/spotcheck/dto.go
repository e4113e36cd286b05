package spotcheck

import (
	"time"

	domain "caretrack/internal/domain/spotcheck"
)

type CreateSpotCheckRequest struct {
	RoomID           *uint  `json:"room_id" validate:"omitempty,gt=0"`
	RoomName         string `json:"room_name" validate:"omitempty,max=100"`
	RequiredRatio    string `json:"required_ratio" validate:"omitempty,max=10"`
	ChildrenCount    int    `json:"children_count" validate:"gte=0"`
	StaffCount       int    `json:"staff_count" validate:"gte=0"`
	CheckMethod      string `json:"check_method" validate:"required"`
	CheckMethodOther string `json:"check_method_other" validate:"omitempty"`
	CheckedByName    string `json:"checked_by_name" validate:"required,max=100"`
	Notes            string `json:"notes" validate:"omitempty,max=500"`
}

type SpotCheckResponse struct {
	ID               uint      `json:"id"`
	FacilityID       uint      `json:"facility_id"`
	RoomID           *uint     `json:"room_id"`
	RoomName         string    `json:"room_name"`
	CheckDate        string    `json:"check_date"`
	CheckTime        string    `json:"check_time"`
	ChildrenCount    int       `json:"children_count"`
	StaffCount       int       `json:"staff_count"`
	RequiredRatio    string    `json:"required_ratio"`
	IsCompliant      bool      `json:"is_compliant"`
	CheckMethod      string    `json:"check_method"`
	CheckMethodOther *string   `json:"check_method_other"`
	CheckedByName    string    `json:"checked_by_name"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

type ReminderStatusResponse struct {
	NextCheckDue         *string  `json:"next_check_due"`
	ChecksCompletedToday int64    `json:"checks_completed_today"`
	ChecksDueToday       int      `json:"checks_due_today"`
	CheckTimes           []string `json:"check_times"`
}

func toSpotCheckResponse(s *domain.SpotCheck) *SpotCheckResponse {
	resp := &SpotCheckResponse{
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
		resp.CheckMethodOther = &other
	}

	return resp
}

func toSpotCheckResponses(checks []*domain.SpotCheck) []*SpotCheckResponse {
	responses := make([]*SpotCheckResponse, 0, len(checks))
	for _, s := range checks {
		responses = append(responses, toSpotCheckResponse(s))
	}
	return responses
}
