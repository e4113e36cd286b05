package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caretrack/internal/domain/medication"
	"caretrack/internal/infrastructure/persistence/mappers"
	"caretrack/internal/infrastructure/persistence/models"
)

type MedicationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MedicationMapper
}

func NewMedicationRepository(db *gorm.DB) medication.Repository {
	return &MedicationRepositoryImpl{
		db:     db,
		mapper: mappers.NewMedicationMapper(),
	}
}

func (r *MedicationRepositoryImpl) Create(ctx context.Context, log *medication.Log) error {
	model := r.mapper.ToModel(log)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create medication log: %w", err)
	}

	log.SetID(model.ID)
	return nil
}

func (r *MedicationRepositoryImpl) GetByID(ctx context.Context, id uint) (*medication.Log, error) {
	var model models.MedicationLogModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get medication log by ID: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *MedicationRepositoryImpl) ListByFacility(ctx context.Context, facilityID uint, limit, offset int) ([]*medication.Log, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.MedicationLogModel{}).
		Where("facility_id = ?", facilityID).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count medication logs: %w", err)
	}

	var modelList []*models.MedicationLogModel
	query := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("administered_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list medication logs: %w", err)
	}

	return r.mapper.ToDomainList(modelList), total, nil
}

func (r *MedicationRepositoryImpl) ListByFacilityAndChild(ctx context.Context, facilityID uint, childName string) ([]*medication.Log, error) {
	var modelList []*models.MedicationLogModel

	err := r.db.WithContext(ctx).
		Where("facility_id = ? AND child_name = ?", facilityID, childName).
		Order("administered_at DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medication logs for child: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}
