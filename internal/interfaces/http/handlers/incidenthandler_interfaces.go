package handlers

import (
	"context"

	"caretrack/internal/application/incident"
)

// IncidentService defines the application operations the incident handler
// depends on.
type IncidentService interface {
	CreateIncident(ctx context.Context, facilityID uint, req incident.CreateIncidentRequest) (*incident.IncidentResponse, error)
	ListIncidents(ctx context.Context, facilityID uint, limit, offset int) (*incident.IncidentListResponse, error)
	MarkParentNotified(ctx context.Context, facilityID, incidentID uint) (*incident.IncidentResponse, error)
}
