package staff

import (
	"fmt"
	"time"

	"caretrack/internal/shared/biztime"
)

// CertType identifies a recognized certification. The key doubles as the
// suffix of certification alert types.
type CertType string

const (
	CertTypeCPR             CertType = "cpr"
	CertTypeFirstAid        CertType = "first_aid"
	CertTypeBackgroundCheck CertType = "background_check"
	CertTypeMedicationAdmin CertType = "medication_admin"
	CertTypeSafeSleep       CertType = "safe_sleep"
)

func AllCertTypes() []CertType {
	return []CertType{
		CertTypeCPR,
		CertTypeFirstAid,
		CertTypeBackgroundCheck,
		CertTypeMedicationAdmin,
		CertTypeSafeSleep,
	}
}

func (c CertType) IsValid() bool {
	switch c {
	case CertTypeCPR, CertTypeFirstAid, CertTypeBackgroundCheck, CertTypeMedicationAdmin, CertTypeSafeSleep:
		return true
	}
	return false
}

func (c CertType) String() string {
	return string(c)
}

// Label returns the human-readable name used in alert titles.
func (c CertType) Label() string {
	switch c {
	case CertTypeCPR:
		return "CPR"
	case CertTypeFirstAid:
		return "First Aid"
	case CertTypeBackgroundCheck:
		return "Background Check"
	case CertTypeMedicationAdmin:
		return "Medication Administration"
	case CertTypeSafeSleep:
		return "Safe Sleep"
	default:
		return string(c)
	}
}

// Certification is one staff member's credential with an expiration date.
type Certification struct {
	id               uint
	staffMemberID    uint
	facilityID       uint
	certType         CertType
	issuedAt         time.Time
	expiresAt        time.Time
	issuingAuthority string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewCertification(staffMemberID, facilityID uint, certType CertType, issuedAt, expiresAt time.Time, issuingAuthority string) (*Certification, error) {
	if staffMemberID == 0 {
		return nil, fmt.Errorf("staff member ID is required")
	}
	if facilityID == 0 {
		return nil, fmt.Errorf("facility ID is required")
	}
	if !certType.IsValid() {
		return nil, fmt.Errorf("invalid certification type: %s", certType)
	}
	if expiresAt.IsZero() {
		return nil, fmt.Errorf("expiration date is required")
	}
	if !issuedAt.IsZero() && expiresAt.Before(issuedAt) {
		return nil, fmt.Errorf("expiration date cannot precede issue date")
	}

	now := biztime.NowUTC()
	return &Certification{
		staffMemberID:    staffMemberID,
		facilityID:       facilityID,
		certType:         certType,
		issuedAt:         issuedAt,
		expiresAt:        expiresAt,
		issuingAuthority: issuingAuthority,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructCertification(
	id uint,
	staffMemberID uint,
	facilityID uint,
	certType CertType,
	issuedAt time.Time,
	expiresAt time.Time,
	issuingAuthority string,
	createdAt time.Time,
	updatedAt time.Time,
) *Certification {
	return &Certification{
		id:               id,
		staffMemberID:    staffMemberID,
		facilityID:       facilityID,
		certType:         certType,
		issuedAt:         issuedAt,
		expiresAt:        expiresAt,
		issuingAuthority: issuingAuthority,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (c *Certification) ID() uint                 { return c.id }
func (c *Certification) StaffMemberID() uint      { return c.staffMemberID }
func (c *Certification) FacilityID() uint         { return c.facilityID }
func (c *Certification) Type() CertType           { return c.certType }
func (c *Certification) IssuedAt() time.Time      { return c.issuedAt }
func (c *Certification) ExpiresAt() time.Time     { return c.expiresAt }
func (c *Certification) IssuingAuthority() string { return c.issuingAuthority }
func (c *Certification) CreatedAt() time.Time     { return c.createdAt }
func (c *Certification) UpdatedAt() time.Time     { return c.updatedAt }

func (c *Certification) SetID(id uint) {
	c.id = id
}

// Renew replaces the credential dates after a recertification.
func (c *Certification) Renew(issuedAt, expiresAt time.Time, issuingAuthority string) error {
	if expiresAt.IsZero() {
		return fmt.Errorf("expiration date is required")
	}
	if !issuedAt.IsZero() && expiresAt.Before(issuedAt) {
		return fmt.Errorf("expiration date cannot precede issue date")
	}

	c.issuedAt = issuedAt
	c.expiresAt = expiresAt
	if issuingAuthority != "" {
		c.issuingAuthority = issuingAuthority
	}
	c.updatedAt = biztime.NowUTC()
	return nil
}

// DaysUntilExpiry counts whole days from the given reference date to the
// expiration date in the facility's business timezone. Negative values mean
// the certification has already expired.
func (c *Certification) DaysUntilExpiry(now time.Time) int {
	loc := biztime.Location()
	e := c.expiresAt.In(loc)
	n := now.In(loc)

	// Compare calendar dates in UTC so DST transitions cannot skew the count.
	expiry := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	return int(expiry.Sub(today) / (24 * time.Hour))
}
