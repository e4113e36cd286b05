package handlers

import (
	"context"

	"caretrack/internal/application/checklist"
)

// ChecklistService defines the application operations the checklist handler
// depends on.
type ChecklistService interface {
	CreateChecklist(ctx context.Context, facilityID uint, req checklist.CreateChecklistRequest) (*checklist.ChecklistResponse, error)
	ListToday(ctx context.Context, facilityID uint) ([]*checklist.ChecklistResponse, error)
	UpdateChecklist(ctx context.Context, facilityID, checklistID uint, req checklist.UpdateChecklistRequest) (*checklist.ChecklistResponse, error)
	CompleteChecklist(ctx context.Context, facilityID, checklistID uint, req checklist.CompleteChecklistRequest) (*checklist.ChecklistResponse, error)
}
