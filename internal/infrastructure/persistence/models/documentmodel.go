package models

import "time"

type DocumentModel struct {
	ID         uint   `gorm:"primaryKey"`
	FacilityID uint   `gorm:"not null;index"`
	Name       string `gorm:"size:200;not null"`
	DocType    string `gorm:"size:60;not null"`
	Status     string `gorm:"size:20;not null;default:'missing';index"`
	IssuedAt   *time.Time
	ExpiresAt  *time.Time
	FileURL    string `gorm:"size:500;not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DocumentModel) TableName() string {
	return "documents"
}
