package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caretrack/internal/domain/checklist"
	"caretrack/internal/infrastructure/persistence/mappers"
	"caretrack/internal/infrastructure/persistence/models"
	"caretrack/internal/shared/errors"
)

type ChecklistRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ChecklistMapper
}

func NewChecklistRepository(db *gorm.DB) checklist.Repository {
	return &ChecklistRepositoryImpl{
		db:     db,
		mapper: mappers.NewChecklistMapper(),
	}
}

func (r *ChecklistRepositoryImpl) Create(ctx context.Context, entity *checklist.Checklist) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map checklist entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("a checklist already exists for this room today")
		}
		return fmt.Errorf("failed to create checklist: %w", err)
	}

	entity.SetID(model.ID)
	return nil
}

func (r *ChecklistRepositoryImpl) Update(ctx context.Context, entity *checklist.Checklist) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map checklist entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update checklist: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("checklist not found")
	}

	return nil
}

func (r *ChecklistRepositoryImpl) GetByID(ctx context.Context, id uint) (*checklist.Checklist, error) {
	var model models.DailyChecklistModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get checklist by ID: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ChecklistRepositoryImpl) GetByRoomAndDate(ctx context.Context, roomID uint, checklistDate string) (*checklist.Checklist, error) {
	var model models.DailyChecklistModel

	err := r.db.WithContext(ctx).
		Where("room_id = ? AND checklist_date = ?", roomID, checklistDate).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get checklist by room and date: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ChecklistRepositoryImpl) ListByFacilityAndDate(ctx context.Context, facilityID uint, checklistDate string) ([]*checklist.Checklist, error) {
	var modelList []*models.DailyChecklistModel

	err := r.db.WithContext(ctx).
		Where("facility_id = ? AND checklist_date = ?", facilityID, checklistDate).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}
