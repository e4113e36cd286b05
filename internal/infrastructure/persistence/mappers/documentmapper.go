package mappers

import (
	"caretrack/internal/domain/document"
	"caretrack/internal/infrastructure/persistence/models"
)

// DocumentMapper handles the conversion between Document domain entities
// and persistence models.
type DocumentMapper interface {
	ToModel(d *document.Document) *models.DocumentModel
	ToDomain(model *models.DocumentModel) *document.Document
	ToDomainList(modelList []*models.DocumentModel) []*document.Document
}

type DocumentMapperImpl struct{}

func NewDocumentMapper() DocumentMapper {
	return &DocumentMapperImpl{}
}

func (m *DocumentMapperImpl) ToModel(d *document.Document) *models.DocumentModel {
	return &models.DocumentModel{
		ID:         d.ID(),
		FacilityID: d.FacilityID(),
		Name:       d.Name(),
		DocType:    d.Type(),
		Status:     d.Status().String(),
		IssuedAt:   d.IssuedAt(),
		ExpiresAt:  d.ExpiresAt(),
		FileURL:    d.FileURL(),
		CreatedAt:  d.CreatedAt(),
		UpdatedAt:  d.UpdatedAt(),
	}
}

func (m *DocumentMapperImpl) ToDomain(model *models.DocumentModel) *document.Document {
	return document.ReconstructDocument(
		model.ID,
		model.FacilityID,
		model.Name,
		model.DocType,
		document.Status(model.Status),
		model.IssuedAt,
		model.ExpiresAt,
		model.FileURL,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *DocumentMapperImpl) ToDomainList(modelList []*models.DocumentModel) []*document.Document {
	docs := make([]*document.Document, 0, len(modelList))
	for _, model := range modelList {
		docs = append(docs, m.ToDomain(model))
	}
	return docs
}
