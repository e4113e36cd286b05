package models

import "time"

type MedicationLogModel struct {
	ID             uint      `gorm:"primaryKey"`
	FacilityID     uint      `gorm:"not null;index:idx_medication_logs_facility_administered"`
	ChildName      string    `gorm:"size:100;not null;index"`
	MedicationName string    `gorm:"size:120;not null"`
	Dosage         string    `gorm:"size:60;not null"`
	AdministeredBy string    `gorm:"size:100;not null"`
	AdministeredAt time.Time `gorm:"not null;index:idx_medication_logs_facility_administered"`
	WitnessedBy    string    `gorm:"size:100;not null;default:''"`
	Notes          string    `gorm:"size:500;not null;default:''"`
	CreatedAt      time.Time
}

func (MedicationLogModel) TableName() string {
	return "medication_logs"
}
