package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caretrack/internal/domain/staff"
	"caretrack/internal/infrastructure/persistence/mappers"
	"caretrack/internal/infrastructure/persistence/models"
	"caretrack/internal/shared/errors"
)

type StaffRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.StaffMapper
}

func NewStaffRepository(db *gorm.DB) staff.Repository {
	return &StaffRepositoryImpl{
		db:     db,
		mapper: mappers.NewStaffMapper(),
	}
}

func (r *StaffRepositoryImpl) Create(ctx context.Context, member *staff.StaffMember) error {
	model := r.mapper.ToModel(member)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}

	member.SetID(model.ID)
	return nil
}

func (r *StaffRepositoryImpl) Update(ctx context.Context, member *staff.StaffMember) error {
	model := r.mapper.ToModel(member)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update staff member: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("staff member not found")
	}

	return nil
}

func (r *StaffRepositoryImpl) GetByID(ctx context.Context, id uint) (*staff.StaffMember, error) {
	var model models.StaffMemberModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff member by ID: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *StaffRepositoryImpl) ListByFacility(ctx context.Context, facilityID uint, activeOnly bool) ([]*staff.StaffMember, error) {
	var modelList []*models.StaffMemberModel

	query := r.db.WithContext(ctx).Where("facility_id = ?", facilityID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Order("last_name ASC, first_name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list staff members: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

func (r *StaffRepositoryImpl) CreateCertification(ctx context.Context, cert *staff.Certification) error {
	model := r.mapper.CertificationToModel(cert)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create certification: %w", err)
	}

	cert.SetID(model.ID)
	return nil
}

func (r *StaffRepositoryImpl) UpdateCertification(ctx context.Context, cert *staff.Certification) error {
	model := r.mapper.CertificationToModel(cert)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update certification: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("certification not found")
	}

	return nil
}

func (r *StaffRepositoryImpl) GetCertificationByID(ctx context.Context, id uint) (*staff.Certification, error) {
	var model models.CertificationModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get certification by ID: %w", err)
	}

	return r.mapper.CertificationToDomain(&model), nil
}

func (r *StaffRepositoryImpl) ListCertificationsByStaffMember(ctx context.Context, staffMemberID uint) ([]*staff.Certification, error) {
	var modelList []*models.CertificationModel

	err := r.db.WithContext(ctx).
		Where("staff_member_id = ?", staffMemberID).
		Order("expires_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}

	return r.mapper.CertificationsToDomain(modelList), nil
}

func (r *StaffRepositoryImpl) ListCertificationsByFacility(ctx context.Context, facilityID uint) ([]*staff.Certification, error) {
	var modelList []*models.CertificationModel

	// Only certifications of active staff members feed alert evaluation.
	err := r.db.WithContext(ctx).
		Joins("JOIN staff_members ON staff_members.id = certifications.staff_member_id").
		Where("certifications.facility_id = ? AND staff_members.active = ?", facilityID, true).
		Order("certifications.expires_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list facility certifications: %w", err)
	}

	return r.mapper.CertificationsToDomain(modelList), nil
}

func (r *StaffRepositoryImpl) DeleteCertification(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CertificationModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete certification: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("certification not found")
	}

	return nil
}
