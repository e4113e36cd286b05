package incident

import (
	"fmt"
	"strings"
	"time"

	"caretrack/internal/shared/biztime"
)

type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeveritySerious  Severity = "serious"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeveritySerious:
		return true
	}
	return false
}

func (s Severity) String() string {
	return string(s)
}

// Report documents an incident involving a child. Metadata carries
// structured extras such as injury location or witnesses.
type Report struct {
	id             uint
	facilityID     uint
	roomID         *uint
	childName      string
	occurredAt     time.Time
	description    string
	severity       Severity
	reportedBy     string
	parentNotified bool
	metadata       map[string]interface{}
	createdAt      time.Time
	updatedAt      time.Time
}

func NewReport(
	facilityID uint,
	roomID *uint,
	childName string,
	occurredAt time.Time,
	description string,
	severity Severity,
	reportedBy string,
	metadata map[string]interface{},
) (*Report, error) {
	if facilityID == 0 {
		return nil, fmt.Errorf("facility ID is required")
	}
	if strings.TrimSpace(childName) == "" {
		return nil, fmt.Errorf("child name is required")
	}
	if occurredAt.IsZero() {
		return nil, fmt.Errorf("occurrence time is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity: %s", severity)
	}
	if strings.TrimSpace(reportedBy) == "" {
		return nil, fmt.Errorf("reporter name is required")
	}

	now := biztime.NowUTC()
	return &Report{
		facilityID:  facilityID,
		roomID:      roomID,
		childName:   strings.TrimSpace(childName),
		occurredAt:  occurredAt.UTC(),
		description: strings.TrimSpace(description),
		severity:    severity,
		reportedBy:  strings.TrimSpace(reportedBy),
		metadata:    metadata,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructReport(
	id uint,
	facilityID uint,
	roomID *uint,
	childName string,
	occurredAt time.Time,
	description string,
	severity Severity,
	reportedBy string,
	parentNotified bool,
	metadata map[string]interface{},
	createdAt time.Time,
	updatedAt time.Time,
) *Report {
	return &Report{
		id:             id,
		facilityID:     facilityID,
		roomID:         roomID,
		childName:      childName,
		occurredAt:     occurredAt,
		description:    description,
		severity:       severity,
		reportedBy:     reportedBy,
		parentNotified: parentNotified,
		metadata:       metadata,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (r *Report) ID() uint                          { return r.id }
func (r *Report) FacilityID() uint                  { return r.facilityID }
func (r *Report) RoomID() *uint                     { return r.roomID }
func (r *Report) ChildName() string                 { return r.childName }
func (r *Report) OccurredAt() time.Time             { return r.occurredAt }
func (r *Report) Description() string               { return r.description }
func (r *Report) Severity() Severity                { return r.severity }
func (r *Report) ReportedBy() string                { return r.reportedBy }
func (r *Report) IsParentNotified() bool            { return r.parentNotified }
func (r *Report) Metadata() map[string]interface{}  { return r.metadata }
func (r *Report) CreatedAt() time.Time              { return r.createdAt }
func (r *Report) UpdatedAt() time.Time              { return r.updatedAt }

func (r *Report) SetID(id uint) {
	r.id = id
}

// MarkParentNotified records that a guardian has been informed.
func (r *Report) MarkParentNotified() {
	r.parentNotified = true
	r.updatedAt = biztime.NowUTC()
}
