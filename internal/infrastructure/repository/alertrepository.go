package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caretrack/internal/domain/alert"
	"caretrack/internal/infrastructure/persistence/mappers"
	"caretrack/internal/infrastructure/persistence/models"
	"caretrack/internal/shared/errors"
)

type AlertRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AlertMapper
}

func NewAlertRepository(db *gorm.DB) alert.Repository {
	return &AlertRepositoryImpl{
		db:     db,
		mapper: mappers.NewAlertMapper(),
	}
}

func (r *AlertRepositoryImpl) Create(ctx context.Context, entity *alert.Alert) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	entity.SetID(model.ID)
	return nil
}

func (r *AlertRepositoryImpl) Update(ctx context.Context, entity *alert.Alert) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update alert: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("alert not found")
	}

	return nil
}

func (r *AlertRepositoryImpl) GetByID(ctx context.Context, id uint) (*alert.Alert, error) {
	var model models.AlertModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alert by ID: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *AlertRepositoryImpl) FindUnresolved(ctx context.Context, facilityID uint, alertType string, relatedEntityID *uint) (*alert.Alert, error) {
	var model models.AlertModel

	query := r.db.WithContext(ctx).
		Where("facility_id = ? AND alert_type = ? AND resolved = ?", facilityID, alertType, false)
	if relatedEntityID != nil {
		query = query.Where("related_entity_id = ?", *relatedEntityID)
	} else {
		query = query.Where("related_entity_id IS NULL")
	}

	if err := query.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find unresolved alert: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *AlertRepositoryImpl) ListActiveByFacility(ctx context.Context, facilityID uint) ([]*alert.Alert, error) {
	var modelList []*models.AlertModel

	err := r.db.WithContext(ctx).
		Where("facility_id = ? AND resolved = ?", facilityID, false).
		Order("CASE severity WHEN 'critical' THEN 1 WHEN 'warning' THEN 2 WHEN 'info' THEN 3 ELSE 4 END, created_at DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

func (r *AlertRepositoryImpl) SummarizeByFacility(ctx context.Context, facilityID uint) (map[alert.Severity]alert.SeveritySummary, error) {
	var rows []struct {
		Severity       string
		Count          int64
		Unacknowledged int64
	}

	err := r.db.WithContext(ctx).
		Model(&models.AlertModel{}).
		Select("severity, COUNT(*) AS count, SUM(CASE WHEN acknowledged THEN 0 ELSE 1 END) AS unacknowledged").
		Where("facility_id = ? AND resolved = ?", facilityID, false).
		Group("severity").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize alerts: %w", err)
	}

	summary := map[alert.Severity]alert.SeveritySummary{
		alert.SeverityCritical: {},
		alert.SeverityWarning:  {},
		alert.SeverityInfo:     {},
	}
	for _, row := range rows {
		summary[alert.Severity(row.Severity)] = alert.SeveritySummary{
			Count:          row.Count,
			Unacknowledged: row.Unacknowledged,
		}
	}

	return summary, nil
}

func (r *AlertRepositoryImpl) CreateHistory(ctx context.Context, history *alert.History) error {
	model := r.mapper.HistoryToModel(history)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create alert history: %w", err)
	}

	history.SetID(model.ID)
	return nil
}

func (r *AlertRepositoryImpl) ListHistoryByAlert(ctx context.Context, alertID uint) ([]*alert.History, error) {
	var modelList []*models.AlertHistoryModel

	err := r.db.WithContext(ctx).
		Where("alert_id = ?", alertID).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list alert history: %w", err)
	}

	histories := make([]*alert.History, 0, len(modelList))
	for _, model := range modelList {
		histories = append(histories, r.mapper.HistoryToDomain(model))
	}

	return histories, nil
}

func (r *AlertRepositoryImpl) Transaction(ctx context.Context, fn func(alert.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AlertRepositoryImpl{db: tx, mapper: r.mapper})
	})
}
