package models

import "time"

type StaffMemberModel struct {
	ID         uint   `gorm:"primaryKey"`
	FacilityID uint   `gorm:"not null;index:idx_staff_members_facility_active"`
	FirstName  string `gorm:"size:100;not null"`
	LastName   string `gorm:"size:100;not null"`
	Role       string `gorm:"size:40;not null"`
	Email      string `gorm:"size:255;not null;default:''"`
	Phone      string `gorm:"size:40;not null;default:''"`
	HireDate   *time.Time
	Active     bool `gorm:"not null;default:true;index:idx_staff_members_facility_active"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (StaffMemberModel) TableName() string {
	return "staff_members"
}

type CertificationModel struct {
	ID               uint      `gorm:"primaryKey"`
	StaffMemberID    uint      `gorm:"not null;index"`
	FacilityID       uint      `gorm:"not null;index:idx_certifications_facility_expires"`
	CertType         string    `gorm:"size:40;not null"`
	IssuedAt         time.Time `gorm:"not null"`
	ExpiresAt        time.Time `gorm:"not null;index:idx_certifications_facility_expires"`
	IssuingAuthority string    `gorm:"size:120;not null;default:''"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (CertificationModel) TableName() string {
	return "certifications"
}
