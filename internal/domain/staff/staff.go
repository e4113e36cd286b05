package staff

import (
	"fmt"
	"strings"
	"time"

	"caretrack/internal/shared/biztime"
)

// StaffMember is an employee of a facility. Members are deactivated rather
// than deleted so their certification history survives.
type StaffMember struct {
	id         uint
	facilityID uint
	firstName  string
	lastName   string
	role       string
	email      string
	phone      string
	hireDate   *time.Time
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewStaffMember(facilityID uint, firstName, lastName, role, email, phone string, hireDate *time.Time) (*StaffMember, error) {
	if facilityID == 0 {
		return nil, fmt.Errorf("facility ID is required")
	}
	if strings.TrimSpace(firstName) == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, fmt.Errorf("last name is required")
	}
	if strings.TrimSpace(role) == "" {
		return nil, fmt.Errorf("role is required")
	}

	now := biztime.NowUTC()
	return &StaffMember{
		facilityID: facilityID,
		firstName:  strings.TrimSpace(firstName),
		lastName:   strings.TrimSpace(lastName),
		role:       strings.TrimSpace(role),
		email:      strings.TrimSpace(email),
		phone:      strings.TrimSpace(phone),
		hireDate:   hireDate,
		active:     true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructStaffMember(
	id uint,
	facilityID uint,
	firstName string,
	lastName string,
	role string,
	email string,
	phone string,
	hireDate *time.Time,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) *StaffMember {
	return &StaffMember{
		id:         id,
		facilityID: facilityID,
		firstName:  firstName,
		lastName:   lastName,
		role:       role,
		email:      email,
		phone:      phone,
		hireDate:   hireDate,
		active:     active,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (s *StaffMember) ID() uint             { return s.id }
func (s *StaffMember) FacilityID() uint     { return s.facilityID }
func (s *StaffMember) FirstName() string    { return s.firstName }
func (s *StaffMember) LastName() string     { return s.lastName }
func (s *StaffMember) Role() string         { return s.role }
func (s *StaffMember) Email() string        { return s.email }
func (s *StaffMember) Phone() string        { return s.phone }
func (s *StaffMember) HireDate() *time.Time { return s.hireDate }
func (s *StaffMember) IsActive() bool       { return s.active }
func (s *StaffMember) CreatedAt() time.Time { return s.createdAt }
func (s *StaffMember) UpdatedAt() time.Time { return s.updatedAt }

func (s *StaffMember) SetID(id uint) {
	s.id = id
}

func (s *StaffMember) FullName() string {
	return s.firstName + " " + s.lastName
}

func (s *StaffMember) UpdateDetails(firstName, lastName, role, email, phone string) error {
	if strings.TrimSpace(firstName) == "" {
		return fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return fmt.Errorf("last name is required")
	}
	if strings.TrimSpace(role) == "" {
		return fmt.Errorf("role is required")
	}

	s.firstName = strings.TrimSpace(firstName)
	s.lastName = strings.TrimSpace(lastName)
	s.role = strings.TrimSpace(role)
	s.email = strings.TrimSpace(email)
	s.phone = strings.TrimSpace(phone)
	s.updatedAt = biztime.NowUTC()
	return nil
}

func (s *StaffMember) Deactivate() {
	s.active = false
	s.updatedAt = biztime.NowUTC()
}

func (s *StaffMember) Activate() {
	s.active = true
	s.updatedAt = biztime.NowUTC()
}
