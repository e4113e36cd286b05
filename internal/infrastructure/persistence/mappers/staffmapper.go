package mappers

import (
	"caretrack/internal/domain/staff"
	"caretrack/internal/infrastructure/persistence/models"
)

// StaffMapper handles the conversion between staff domain entities and
// persistence models.
type StaffMapper interface {
	ToModel(s *staff.StaffMember) *models.StaffMemberModel
	ToDomain(model *models.StaffMemberModel) *staff.StaffMember
	ToDomainList(modelList []*models.StaffMemberModel) []*staff.StaffMember
	CertificationToModel(c *staff.Certification) *models.CertificationModel
	CertificationToDomain(model *models.CertificationModel) *staff.Certification
	CertificationsToDomain(modelList []*models.CertificationModel) []*staff.Certification
}

type StaffMapperImpl struct{}

func NewStaffMapper() StaffMapper {
	return &StaffMapperImpl{}
}

func (m *StaffMapperImpl) ToModel(s *staff.StaffMember) *models.StaffMemberModel {
	return &models.StaffMemberModel{
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

func (m *StaffMapperImpl) ToDomain(model *models.StaffMemberModel) *staff.StaffMember {
	return staff.ReconstructStaffMember(
		model.ID,
		model.FacilityID,
		model.FirstName,
		model.LastName,
		model.Role,
		model.Email,
		model.Phone,
		model.HireDate,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *StaffMapperImpl) ToDomainList(modelList []*models.StaffMemberModel) []*staff.StaffMember {
	members := make([]*staff.StaffMember, 0, len(modelList))
	for _, model := range modelList {
		members = append(members, m.ToDomain(model))
	}
	return members
}

func (m *StaffMapperImpl) CertificationToModel(c *staff.Certification) *models.CertificationModel {
	return &models.CertificationModel{
		ID:               c.ID(),
		StaffMemberID:    c.StaffMemberID(),
		FacilityID:       c.FacilityID(),
		CertType:         c.Type().String(),
		IssuedAt:         c.IssuedAt(),
		ExpiresAt:        c.ExpiresAt(),
		IssuingAuthority: c.IssuingAuthority(),
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
}

func (m *StaffMapperImpl) CertificationToDomain(model *models.CertificationModel) *staff.Certification {
	return staff.ReconstructCertification(
		model.ID,
		model.StaffMemberID,
		model.FacilityID,
		staff.CertType(model.CertType),
		model.IssuedAt,
		model.ExpiresAt,
		model.IssuingAuthority,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *StaffMapperImpl) CertificationsToDomain(modelList []*models.CertificationModel) []*staff.Certification {
	certs := make([]*staff.Certification, 0, len(modelList))
	for _, model := range modelList {
		certs = append(certs, m.CertificationToDomain(model))
	}
	return certs
}
