package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caretrack/internal/domain/incident"
	"caretrack/internal/infrastructure/persistence/mappers"
	"caretrack/internal/infrastructure/persistence/models"
	"caretrack/internal/shared/errors"
)

type IncidentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.IncidentMapper
}

func NewIncidentRepository(db *gorm.DB) incident.Repository {
	return &IncidentRepositoryImpl{
		db:     db,
		mapper: mappers.NewIncidentMapper(),
	}
}

func (r *IncidentRepositoryImpl) Create(ctx context.Context, report *incident.Report) error {
	model, err := r.mapper.ToModel(report)
	if err != nil {
		return fmt.Errorf("failed to map incident entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create incident report: %w", err)
	}

	report.SetID(model.ID)
	return nil
}

func (r *IncidentRepositoryImpl) Update(ctx context.Context, report *incident.Report) error {
	model, err := r.mapper.ToModel(report)
	if err != nil {
		return fmt.Errorf("failed to map incident entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update incident report: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("incident report not found")
	}

	return nil
}

func (r *IncidentRepositoryImpl) GetByID(ctx context.Context, id uint) (*incident.Report, error) {
	var model models.IncidentReportModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident report by ID: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IncidentRepositoryImpl) ListByFacility(ctx context.Context, facilityID uint, limit, offset int) ([]*incident.Report, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.IncidentReportModel{}).
		Where("facility_id = ?", facilityID).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count incident reports: %w", err)
	}

	var modelList []*models.IncidentReportModel
	query := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("occurred_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list incident reports: %w", err)
	}

	reports, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map incident models to entities: %w", err)
	}

	return reports, total, nil
}
