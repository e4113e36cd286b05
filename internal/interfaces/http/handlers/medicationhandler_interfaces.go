package handlers

import (
	"context"

	"caretrack/internal/application/medication"
)

// MedicationService defines the application operations the medication handler
// depends on.
type MedicationService interface {
	CreateLog(ctx context.Context, facilityID uint, req medication.CreateMedicationLogRequest) (*medication.MedicationLogResponse, error)
	ListLogs(ctx context.Context, facilityID uint, childName string, limit, offset int) (*medication.MedicationLogListResponse, error)
}
