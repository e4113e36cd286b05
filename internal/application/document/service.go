package document

import (
	"context"
	"fmt"
	"time"

	domain "caretrack/internal/domain/document"
	"caretrack/internal/shared/biztime"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

// Service manages facility compliance documents.
type Service struct {
	repo   domain.Repository
	logger logger.Interface
}

func NewService(repo domain.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateDocument(ctx context.Context, facilityID uint, req CreateDocumentRequest) (*DocumentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	issuedAt, err := parseOptionalDate(req.IssuedAt)
	if err != nil {
		return nil, errors.NewValidationError("invalid issued_at date")
	}
	expiresAt, err := parseOptionalDate(req.ExpiresAt)
	if err != nil {
		return nil, errors.NewValidationError("invalid expires_at date")
	}

	entity, err := domain.NewDocument(facilityID, req.Name, req.DocType, issuedAt, expiresAt, req.FileURL)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		s.logger.Errorw("failed to create document", "facility_id", facilityID, "name", req.Name, "error", err)
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	s.logger.Infow("document created", "facility_id", facilityID, "document_id", entity.ID(), "status", entity.Status())
	return toDocumentResponse(entity), nil
}

// ListDocuments returns every document for the facility. Statuses are
// re-derived against the current date so expiry transitions surface without
// waiting for the next write; any change is persisted.
func (s *Service) ListDocuments(ctx context.Context, facilityID uint) ([]*DocumentResponse, error) {
	docs, err := s.repo.ListByFacility(ctx, facilityID)
	if err != nil {
		s.logger.Errorw("failed to list documents", "facility_id", facilityID, "error", err)
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	now := biztime.NowUTC()
	for _, doc := range docs {
		if !doc.RefreshStatus(now) {
			continue
		}
		if err := s.repo.Update(ctx, doc); err != nil {
			s.logger.Errorw("failed to persist document status change", "document_id", doc.ID(), "error", err)
			return nil, fmt.Errorf("failed to refresh document status: %w", err)
		}
		s.logger.Infow("document status changed", "document_id", doc.ID(), "status", doc.Status())
	}

	return toDocumentResponses(docs), nil
}

func (s *Service) UpdateDocument(ctx context.Context, facilityID, documentID uint, req UpdateDocumentRequest) (*DocumentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	entity, err := s.getFacilityDocument(ctx, facilityID, documentID)
	if err != nil {
		return nil, err
	}

	expiresAt, err := parseOptionalDate(req.ExpiresAt)
	if err != nil {
		return nil, errors.NewValidationError("invalid expires_at date")
	}

	if err := entity.UpdateDetails(req.Name, req.DocType, expiresAt); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to update document", "document_id", documentID, "error", err)
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	return toDocumentResponse(entity), nil
}

func (s *Service) AttachFile(ctx context.Context, facilityID, documentID uint, req AttachFileRequest) (*DocumentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	entity, err := s.getFacilityDocument(ctx, facilityID, documentID)
	if err != nil {
		return nil, err
	}

	issuedAt, err := parseOptionalDate(req.IssuedAt)
	if err != nil {
		return nil, errors.NewValidationError("invalid issued_at date")
	}
	expiresAt, err := parseOptionalDate(req.ExpiresAt)
	if err != nil {
		return nil, errors.NewValidationError("invalid expires_at date")
	}

	if err := entity.AttachFile(req.FileURL, issuedAt, expiresAt); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to attach document file", "document_id", documentID, "error", err)
		return nil, fmt.Errorf("failed to attach document file: %w", err)
	}

	s.logger.Infow("document file attached", "document_id", documentID, "status", entity.Status())
	return toDocumentResponse(entity), nil
}

func (s *Service) getFacilityDocument(ctx context.Context, facilityID, documentID uint) (*domain.Document, error) {
	entity, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		s.logger.Errorw("failed to get document", "document_id", documentID, "error", err)
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if entity == nil || entity.FacilityID() != facilityID {
		return nil, errors.NewNotFoundError("document not found")
	}
	return entity, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := biztime.ParseDateInBizTimezone(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
