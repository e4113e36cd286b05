package staff

import "context"

// Repository defines persistence operations for staff members and their
// certifications.
type Repository interface {
	Create(ctx context.Context, member *StaffMember) error
	Update(ctx context.Context, member *StaffMember) error
	GetByID(ctx context.Context, id uint) (*StaffMember, error)
	ListByFacility(ctx context.Context, facilityID uint, activeOnly bool) ([]*StaffMember, error)

	CreateCertification(ctx context.Context, cert *Certification) error
	UpdateCertification(ctx context.Context, cert *Certification) error
	GetCertificationByID(ctx context.Context, id uint) (*Certification, error)
	ListCertificationsByStaffMember(ctx context.Context, staffMemberID uint) ([]*Certification, error)
	// ListCertificationsByFacility returns certifications of active staff
	// members, the input set for certification-expiry alert evaluation.
	ListCertificationsByFacility(ctx context.Context, facilityID uint) ([]*Certification, error)
	DeleteCertification(ctx context.Context, id uint) error
}
