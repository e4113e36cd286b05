package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caretrack/internal/domain/document"
	"caretrack/internal/infrastructure/persistence/mappers"
	"caretrack/internal/infrastructure/persistence/models"
	"caretrack/internal/shared/errors"
)

type DocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DocumentMapper
}

func NewDocumentRepository(db *gorm.DB) document.Repository {
	return &DocumentRepositoryImpl{
		db:     db,
		mapper: mappers.NewDocumentMapper(),
	}
}

func (r *DocumentRepositoryImpl) Create(ctx context.Context, doc *document.Document) error {
	model := r.mapper.ToModel(doc)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	doc.SetID(model.ID)
	return nil
}

func (r *DocumentRepositoryImpl) Update(ctx context.Context, doc *document.Document) error {
	model := r.mapper.ToModel(doc)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update document: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("document not found")
	}

	return nil
}

func (r *DocumentRepositoryImpl) GetByID(ctx context.Context, id uint) (*document.Document, error) {
	var model models.DocumentModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document by ID: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *DocumentRepositoryImpl) ListByFacility(ctx context.Context, facilityID uint) ([]*document.Document, error) {
	var modelList []*models.DocumentModel

	err := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("name ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

func (r *DocumentRepositoryImpl) CountByFacilityAndStatus(ctx context.Context, facilityID uint, status document.Status) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.DocumentModel{}).
		Where("facility_id = ? AND status = ?", facilityID, status.String()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}

	return count, nil
}
