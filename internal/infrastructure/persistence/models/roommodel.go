package models

import "time"

type RoomModel struct {
	ID            uint   `gorm:"primaryKey"`
	FacilityID    uint   `gorm:"not null;uniqueIndex:uk_rooms_facility_name;index:idx_rooms_facility_status"`
	Name          string `gorm:"size:100;not null;uniqueIndex:uk_rooms_facility_name"`
	AgeGroup      string `gorm:"size:20;not null"`
	RequiredRatio string `gorm:"size:10;not null"`
	Capacity      int    `gorm:"not null;default:0"`
	Status        string `gorm:"size:20;not null;default:'active';index:idx_rooms_facility_status"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (RoomModel) TableName() string {
	return "rooms"
}
