package models

import (
	"time"

	"gorm.io/datatypes"
)

type IncidentReportModel struct {
	ID             uint      `gorm:"primaryKey"`
	FacilityID     uint      `gorm:"not null;index:idx_incident_reports_facility_occurred"`
	RoomID         *uint     `gorm:"index"`
	ChildName      string    `gorm:"size:100;not null"`
	OccurredAt     time.Time `gorm:"not null;index:idx_incident_reports_facility_occurred"`
	Description    string    `gorm:"type:text;not null"`
	Severity       string    `gorm:"size:10;not null"`
	ReportedBy     string    `gorm:"size:100;not null"`
	ParentNotified bool      `gorm:"not null;default:false"`
	Metadata       datatypes.JSON
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (IncidentReportModel) TableName() string {
	return "incident_reports"
}
