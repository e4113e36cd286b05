package staff

import (
	"context"
	"fmt"
	"time"

	domain "caretrack/internal/domain/staff"
	"caretrack/internal/shared/biztime"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

// Service handles staff members and their certifications.
type Service struct {
	repo   domain.Repository
	logger logger.Interface
}

func NewService(repo domain.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateStaff(ctx context.Context, facilityID uint, req CreateStaffRequest) (*StaffResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	hireDate, err := parseOptionalDate(req.HireDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	member, err := domain.NewStaffMember(facilityID, req.FirstName, req.LastName, req.Role, req.Email, req.Phone, hireDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, member); err != nil {
		s.logger.Errorw("failed to create staff member", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}

	s.logger.Infow("staff member created", "facility_id", facilityID, "staff_id", member.ID())
	return toStaffResponse(member), nil
}

func (s *Service) ListStaff(ctx context.Context, facilityID uint, activeOnly bool) ([]*StaffResponse, error) {
	members, err := s.repo.ListByFacility(ctx, facilityID, activeOnly)
	if err != nil {
		s.logger.Errorw("failed to list staff members", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to list staff members: %w", err)
	}

	return toStaffResponses(members), nil
}

func (s *Service) UpdateStaff(ctx context.Context, facilityID, staffID uint, req UpdateStaffRequest) (*StaffResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	member, err := s.getFacilityStaff(ctx, facilityID, staffID)
	if err != nil {
		return nil, err
	}

	if err := member.UpdateDetails(req.FirstName, req.LastName, req.Role, req.Email, req.Phone); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, member); err != nil {
		s.logger.Errorw("failed to update staff member", "staff_id", staffID, "error", err)
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}

	return toStaffResponse(member), nil
}

func (s *Service) DeactivateStaff(ctx context.Context, facilityID, staffID uint) (*StaffResponse, error) {
	member, err := s.getFacilityStaff(ctx, facilityID, staffID)
	if err != nil {
		return nil, err
	}

	member.Deactivate()

	if err := s.repo.Update(ctx, member); err != nil {
		s.logger.Errorw("failed to deactivate staff member", "staff_id", staffID, "error", err)
		return nil, fmt.Errorf("failed to deactivate staff member: %w", err)
	}

	s.logger.Infow("staff member deactivated", "facility_id", facilityID, "staff_id", staffID)
	return toStaffResponse(member), nil
}

func (s *Service) AddCertification(ctx context.Context, facilityID, staffID uint, req CreateCertificationRequest) (*CertificationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.getFacilityStaff(ctx, facilityID, staffID); err != nil {
		return nil, err
	}

	issuedAt, expiresAt, err := parseCertDates(req.IssuedAt, req.ExpiresAt)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	cert, err := domain.NewCertification(staffID, facilityID, domain.CertType(req.CertType), issuedAt, expiresAt, req.IssuingAuthority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.CreateCertification(ctx, cert); err != nil {
		s.logger.Errorw("failed to create certification", "staff_id", staffID, "error", err)
		return nil, fmt.Errorf("failed to create certification: %w", err)
	}

	s.logger.Infow("certification added", "staff_id", staffID, "cert_type", req.CertType)
	return toCertificationResponse(cert, biztime.NowUTC()), nil
}

func (s *Service) ListCertifications(ctx context.Context, facilityID, staffID uint) ([]*CertificationResponse, error) {
	if _, err := s.getFacilityStaff(ctx, facilityID, staffID); err != nil {
		return nil, err
	}

	certs, err := s.repo.ListCertificationsByStaffMember(ctx, staffID)
	if err != nil {
		s.logger.Errorw("failed to list certifications", "staff_id", staffID, "error", err)
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}

	now := biztime.NowUTC()
	responses := make([]*CertificationResponse, 0, len(certs))
	for _, cert := range certs {
		responses = append(responses, toCertificationResponse(cert, now))
	}

	return responses, nil
}

func (s *Service) RenewCertification(ctx context.Context, facilityID, certID uint, req RenewCertificationRequest) (*CertificationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	cert, err := s.repo.GetCertificationByID(ctx, certID)
	if err != nil {
		s.logger.Errorw("failed to get certification", "certification_id", certID, "error", err)
		return nil, fmt.Errorf("failed to get certification: %w", err)
	}
	if cert == nil || cert.FacilityID() != facilityID {
		return nil, errors.NewNotFoundError("certification not found")
	}

	issuedAt, expiresAt, err := parseCertDates(req.IssuedAt, req.ExpiresAt)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := cert.Renew(issuedAt, expiresAt, req.IssuingAuthority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.UpdateCertification(ctx, cert); err != nil {
		s.logger.Errorw("failed to renew certification", "certification_id", certID, "error", err)
		return nil, fmt.Errorf("failed to renew certification: %w", err)
	}

	s.logger.Infow("certification renewed", "certification_id", certID)
	return toCertificationResponse(cert, biztime.NowUTC()), nil
}

func (s *Service) getFacilityStaff(ctx context.Context, facilityID, staffID uint) (*domain.StaffMember, error) {
	member, err := s.repo.GetByID(ctx, staffID)
	if err != nil {
		s.logger.Errorw("failed to get staff member", "staff_id", staffID, "error", err)
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	if member == nil || member.FacilityID() != facilityID {
		return nil, errors.NewNotFoundError("staff member not found")
	}
	return member, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := biztime.ParseDateInBizTimezone(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseCertDates(issued, expires string) (time.Time, time.Time, error) {
	var issuedAt time.Time
	if issued != "" {
		t, err := biztime.ParseDateInBizTimezone(issued)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		issuedAt = t
	}

	expiresAt, err := biztime.ParseDateInBizTimezone(expires)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return issuedAt, expiresAt, nil
}
