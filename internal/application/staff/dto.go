package staff

import (
	"time"

	domain "caretrack/internal/domain/staff"
)

type CreateStaffRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Role      string `json:"role" validate:"required,max=40"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=40"`
	HireDate  string `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateStaffRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Role      string `json:"role" validate:"required,max=40"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=40"`
}

type CreateCertificationRequest struct {
	CertType         string `json:"cert_type" validate:"required"`
	IssuedAt         string `json:"issued_at" validate:"omitempty,datetime=2006-01-02"`
	ExpiresAt        string `json:"expires_at" validate:"required,datetime=2006-01-02"`
	IssuingAuthority string `json:"issuing_authority" validate:"omitempty,max=120"`
}

type RenewCertificationRequest struct {
	IssuedAt         string `json:"issued_at" validate:"omitempty,datetime=2006-01-02"`
	ExpiresAt        string `json:"expires_at" validate:"required,datetime=2006-01-02"`
	IssuingAuthority string `json:"issuing_authority" validate:"omitempty,max=120"`
}

type StaffResponse struct {
	ID         uint       `json:"id"`
	FacilityID uint       `json:"facility_id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Role       string     `json:"role"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	HireDate   *time.Time `json:"hire_date"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CertificationResponse struct {
	ID               uint      `json:"id"`
	StaffMemberID    uint      `json:"staff_member_id"`
	CertType         string    `json:"cert_type"`
	IssuedAt         time.Time `json:"issued_at"`
	ExpiresAt        time.Time `json:"expires_at"`
	IssuingAuthority string    `json:"issuing_authority"`
	DaysUntilExpiry  int       `json:"days_until_expiry"`
}

func toStaffResponse(s *domain.StaffMember) *StaffResponse {
	return &StaffResponse{
		ID:         s.ID(),
		FacilityID: s.FacilityID(),
		FirstName:  s.FirstName(),
		LastName:   s.LastName(),
		Role:       s.Role(),
		Email:      s.Email(),
		Phone:      s.Phone(),
		HireDate:   s.HireDate(),
		Active:     s.IsActive(),
		CreatedAt:  s.CreatedAt(),
		UpdatedAt:  s.UpdatedAt(),
	}
}

func toStaffResponses(members []*domain.StaffMember) []*StaffResponse {
	responses := make([]*StaffResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, toStaffResponse(m))
	}
	return responses
}

func toCertificationResponse(c *domain.Certification, now time.Time) *CertificationResponse {
	return &CertificationResponse{
		ID:               c.ID(),
		StaffMemberID:    c.StaffMemberID(),
		CertType:         c.Type().String(),
		IssuedAt:         c.IssuedAt(),
		ExpiresAt:        c.ExpiresAt(),
		IssuingAuthority: c.IssuingAuthority(),
		DaysUntilExpiry:  c.DaysUntilExpiry(now),
	}
}
