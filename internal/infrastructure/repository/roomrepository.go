package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caretrack/internal/domain/room"
	"caretrack/internal/infrastructure/persistence/mappers"
	"caretrack/internal/infrastructure/persistence/models"
	"caretrack/internal/shared/errors"
)

type RoomRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RoomMapper
}

func NewRoomRepository(db *gorm.DB) room.Repository {
	return &RoomRepositoryImpl{
		db:     db,
		mapper: mappers.NewRoomMapper(),
	}
}

func (r *RoomRepositoryImpl) Create(ctx context.Context, entity *room.Room) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(fmt.Sprintf("room name %q already exists in this facility", entity.Name()))
		}
		return fmt.Errorf("failed to create room: %w", err)
	}

	entity.SetID(model.ID)
	return nil
}

func (r *RoomRepositoryImpl) Update(ctx context.Context, entity *room.Room) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError(fmt.Sprintf("room name %q already exists in this facility", entity.Name()))
		}
		return fmt.Errorf("failed to update room: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("room not found")
	}

	return nil
}

func (r *RoomRepositoryImpl) GetByID(ctx context.Context, id uint) (*room.Room, error) {
	var model models.RoomModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get room by ID: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RoomRepositoryImpl) ListByFacility(ctx context.Context, facilityID uint, includeArchived bool) ([]*room.Room, error) {
	var modelList []*models.RoomModel

	query := r.db.WithContext(ctx).Where("facility_id = ?", facilityID)
	if !includeArchived {
		query = query.Where("status = ?", room.StatusActive.String())
	}

	if err := query.Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}
