package handlers

import (
	"context"

	"caretrack/internal/application/document"
)

// DocumentService defines the application operations the document handler
// depends on.
type DocumentService interface {
	CreateDocument(ctx context.Context, facilityID uint, req document.CreateDocumentRequest) (*document.DocumentResponse, error)
	ListDocuments(ctx context.Context, facilityID uint) ([]*document.DocumentResponse, error)
	UpdateDocument(ctx context.Context, facilityID, documentID uint, req document.UpdateDocumentRequest) (*document.DocumentResponse, error)
	AttachFile(ctx context.Context, facilityID, documentID uint, req document.AttachFileRequest) (*document.DocumentResponse, error)
}
