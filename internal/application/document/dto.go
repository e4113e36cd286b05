package document

import (
	"time"

	domain "caretrack/internal/domain/document"
)

type CreateDocumentRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	DocType   string `json:"doc_type" validate:"required,max=60"`
	IssuedAt  string `json:"issued_at" validate:"omitempty,datetime=2006-01-02"`
	ExpiresAt string `json:"expires_at" validate:"omitempty,datetime=2006-01-02"`
	FileURL   string `json:"file_url" validate:"omitempty,url,max=500"`
}

type UpdateDocumentRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	DocType   string `json:"doc_type" validate:"required,max=60"`
	ExpiresAt string `json:"expires_at" validate:"omitempty,datetime=2006-01-02"`
}

type AttachFileRequest struct {
	FileURL   string `json:"file_url" validate:"required,url,max=500"`
	IssuedAt  string `json:"issued_at" validate:"omitempty,datetime=2006-01-02"`
	ExpiresAt string `json:"expires_at" validate:"omitempty,datetime=2006-01-02"`
}

type DocumentResponse struct {
	ID         uint       `json:"id"`
	FacilityID uint       `json:"facility_id"`
	Name       string     `json:"name"`
	DocType    string     `json:"doc_type"`
	Status     string     `json:"status"`
	IssuedAt   *time.Time `json:"issued_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
	FileURL    string     `json:"file_url"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func toDocumentResponse(d *domain.Document) *DocumentResponse {
	return &DocumentResponse{
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

func toDocumentResponses(docs []*domain.Document) []*DocumentResponse {
	responses := make([]*DocumentResponse, 0, len(docs))
	for _, d := range docs {
		responses = append(responses, toDocumentResponse(d))
	}
	return responses
}
