package models

import (
	"time"

	"gorm.io/datatypes"
)

type DailyChecklistModel struct {
	ID            uint           `gorm:"primaryKey"`
	FacilityID    uint           `gorm:"not null;index:idx_daily_checklists_facility_date"`
	RoomID        uint           `gorm:"not null;uniqueIndex:uk_daily_checklists_room_date"`
	ChecklistDate string         `gorm:"size:10;not null;uniqueIndex:uk_daily_checklists_room_date;index:idx_daily_checklists_facility_date"`
	Items         datatypes.JSON `gorm:"not null"`
	CompletedBy   string         `gorm:"size:100;not null;default:''"`
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DailyChecklistModel) TableName() string {
	return "daily_checklists"
}
