package models

import "time"

type SpotCheckModel struct {
	ID               uint    `gorm:"primaryKey"`
	FacilityID       uint    `gorm:"not null;index:idx_spot_checks_facility_date"`
	RoomID           *uint   `gorm:"index"`
	RoomName         string  `gorm:"size:100;not null"`
	CheckDate        string  `gorm:"size:10;not null;index:idx_spot_checks_facility_date"`
	CheckTime        string  `gorm:"size:8;not null"`
	ChildrenCount    int     `gorm:"not null"`
	StaffCount       int     `gorm:"not null"`
	RequiredRatio    string  `gorm:"size:10;not null"`
	IsCompliant      bool    `gorm:"not null"`
	CheckMethod      string  `gorm:"size:20;not null"`
	CheckMethodOther *string `gorm:"size:200"`
	CheckedByName    string  `gorm:"size:100;not null"`
	Notes            string  `gorm:"size:500;not null;default:''"`
	CreatedAt        time.Time
}

func (SpotCheckModel) TableName() string {
	return "ratio_spot_checks"
}
