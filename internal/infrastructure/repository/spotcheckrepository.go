package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caretrack/internal/domain/spotcheck"
	"caretrack/internal/infrastructure/persistence/mappers"
	"caretrack/internal/infrastructure/persistence/models"
)

type SpotCheckRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SpotCheckMapper
}

func NewSpotCheckRepository(db *gorm.DB) spotcheck.Repository {
	return &SpotCheckRepositoryImpl{
		db:     db,
		mapper: mappers.NewSpotCheckMapper(),
	}
}

func (r *SpotCheckRepositoryImpl) Create(ctx context.Context, check *spotcheck.SpotCheck) error {
	model := r.mapper.ToModel(check)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create spot check: %w", err)
	}

	check.SetID(model.ID)
	return nil
}

func (r *SpotCheckRepositoryImpl) ListByFacilityAndDate(ctx context.Context, facilityID uint, checkDate string) ([]*spotcheck.SpotCheck, error) {
	var modelList []*models.SpotCheckModel

	err := r.db.WithContext(ctx).
		Where("facility_id = ? AND check_date = ?", facilityID, checkDate).
		Order("check_time DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list spot checks: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}

func (r *SpotCheckRepositoryImpl) CountByFacilityAndDate(ctx context.Context, facilityID uint, checkDate string) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.SpotCheckModel{}).
		Where("facility_id = ? AND check_date = ?", facilityID, checkDate).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count spot checks: %w", err)
	}

	return count, nil
}

func (r *SpotCheckRepositoryImpl) DailySummaries(ctx context.Context, facilityID uint, fromDate, toDate string) ([]spotcheck.DailySummary, error) {
	var rows []struct {
		CheckDate       string
		TotalChecks     int
		CompliantChecks int
	}

	err := r.db.WithContext(ctx).
		Model(&models.SpotCheckModel{}).
		Select("check_date, COUNT(*) AS total_checks, SUM(CASE WHEN is_compliant THEN 1 ELSE 0 END) AS compliant_checks").
		Where("facility_id = ? AND check_date >= ? AND check_date <= ?", facilityID, fromDate, toDate).
		Group("check_date").
		Order("check_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate spot checks: %w", err)
	}

	summaries := make([]spotcheck.DailySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, spotcheck.DailySummary{
			CheckDate:       row.CheckDate,
			TotalChecks:     row.TotalChecks,
			CompliantChecks: row.CompliantChecks,
			Violations:      row.TotalChecks - row.CompliantChecks,
		})
	}

	return summaries, nil
}
