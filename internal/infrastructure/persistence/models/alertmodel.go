package models

import "time"

type AlertModel struct {
	ID                 uint    `gorm:"primaryKey"`
	FacilityID         uint    `gorm:"not null;index:idx_alerts_dedup;index:idx_alerts_facility_resolved"`
	AlertType          string  `gorm:"size:60;not null;index:idx_alerts_dedup"`
	Severity           string  `gorm:"size:10;not null"`
	Title              string  `gorm:"size:200;not null"`
	Message            string  `gorm:"type:text"`
	ActionURL          string  `gorm:"size:500;not null;default:''"`
	RelatedEntityType  *string `gorm:"size:40"`
	RelatedEntityID    *uint   `gorm:"index:idx_alerts_dedup"`
	Acknowledged       bool    `gorm:"not null;default:false"`
	AcknowledgedAt     *time.Time
	AcknowledgedByName *string `gorm:"size:100"`
	Resolved           bool    `gorm:"not null;default:false;index:idx_alerts_dedup;index:idx_alerts_facility_resolved"`
	ResolvedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (AlertModel) TableName() string {
	return "alerts"
}

type AlertHistoryModel struct {
	ID           uint   `gorm:"primaryKey"`
	AlertID      uint   `gorm:"not null;index"`
	Action       string `gorm:"size:20;not null"`
	ActionByName string `gorm:"size:100;not null;default:''"`
	CreatedAt    time.Time
}

func (AlertHistoryModel) TableName() string {
	return "alert_history"
}
