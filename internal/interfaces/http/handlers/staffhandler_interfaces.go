package handlers

import (
	"context"

	"caretrack/internal/application/staff"
)

// StaffService defines the application operations the staff handler depends on.
type StaffService interface {
	CreateStaff(ctx context.Context, facilityID uint, req staff.CreateStaffRequest) (*staff.StaffResponse, error)
	ListStaff(ctx context.Context, facilityID uint, activeOnly bool) ([]*staff.StaffResponse, error)
	UpdateStaff(ctx context.Context, facilityID, staffID uint, req staff.UpdateStaffRequest) (*staff.StaffResponse, error)
	DeactivateStaff(ctx context.Context, facilityID, staffID uint) (*staff.StaffResponse, error)
	AddCertification(ctx context.Context, facilityID, staffID uint, req staff.CreateCertificationRequest) (*staff.CertificationResponse, error)
	ListCertifications(ctx context.Context, facilityID, staffID uint) ([]*staff.CertificationResponse, error)
	RenewCertification(ctx context.Context, facilityID, certID uint, req staff.RenewCertificationRequest) (*staff.CertificationResponse, error)
}
