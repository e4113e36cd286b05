package alert

import (
	"fmt"
	"strings"
	"time"

	"caretrack/internal/shared/biztime"
)

// Well-known alert type keys. Certification alerts append the certification
// key, e.g. "cert_expiring_cpr".
const (
	TypeMissingSpotCheck   = "missing_spot_check"
	TypeMissingDocuments   = "missing_documents"
	TypeExpiredDocuments   = "expired_documents"
	TypeCertExpiredPrefix  = "cert_expired_"
	TypeCertExpiringPrefix = "cert_expiring_"
)

// Alert is a system-generated compliance notice. At most one unresolved
// alert may exist per (facility, alert type, related entity); the rule
// evaluators enforce this before insert and the dedup index backs it up.
type Alert struct {
	id                 uint
	facilityID         uint
	alertType          string
	severity           Severity
	title              string
	message            string
	actionURL          string
	relatedEntityType  *string
	relatedEntityID    *uint
	acknowledged       bool
	acknowledgedAt     *time.Time
	acknowledgedByName *string
	resolved           bool
	resolvedAt         *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

func NewAlert(facilityID uint, alertType string, severity Severity, title, message string) (*Alert, error) {
	if facilityID == 0 {
		return nil, fmt.Errorf("facility ID is required")
	}
	if strings.TrimSpace(alertType) == "" {
		return nil, fmt.Errorf("alert type is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity: %s", severity)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("alert title is required")
	}

	now := biztime.NowUTC()
	return &Alert{
		facilityID: facilityID,
		alertType:  alertType,
		severity:   severity,
		title:      title,
		message:    message,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructAlert rebuilds an alert from persistence without validation.
func ReconstructAlert(
	id uint,
	facilityID uint,
	alertType string,
	severity Severity,
	title string,
	message string,
	actionURL string,
	relatedEntityType *string,
	relatedEntityID *uint,
	acknowledged bool,
	acknowledgedAt *time.Time,
	acknowledgedByName *string,
	resolved bool,
	resolvedAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) *Alert {
	return &Alert{
		id:                 id,
		facilityID:         facilityID,
		alertType:          alertType,
		severity:           severity,
		title:              title,
		message:            message,
		actionURL:          actionURL,
		relatedEntityType:  relatedEntityType,
		relatedEntityID:    relatedEntityID,
		acknowledged:       acknowledged,
		acknowledgedAt:     acknowledgedAt,
		acknowledgedByName: acknowledgedByName,
		resolved:           resolved,
		resolvedAt:         resolvedAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (a *Alert) ID() uint                    { return a.id }
func (a *Alert) FacilityID() uint            { return a.facilityID }
func (a *Alert) Type() string                { return a.alertType }
func (a *Alert) Severity() Severity          { return a.severity }
func (a *Alert) Title() string               { return a.title }
func (a *Alert) Message() string             { return a.message }
func (a *Alert) ActionURL() string           { return a.actionURL }
func (a *Alert) RelatedEntityType() *string  { return a.relatedEntityType }
func (a *Alert) RelatedEntityID() *uint      { return a.relatedEntityID }
func (a *Alert) IsAcknowledged() bool        { return a.acknowledged }
func (a *Alert) AcknowledgedAt() *time.Time  { return a.acknowledgedAt }
func (a *Alert) AcknowledgedByName() *string { return a.acknowledgedByName }
func (a *Alert) IsResolved() bool            { return a.resolved }
func (a *Alert) ResolvedAt() *time.Time      { return a.resolvedAt }
func (a *Alert) CreatedAt() time.Time        { return a.createdAt }
func (a *Alert) UpdatedAt() time.Time        { return a.updatedAt }

func (a *Alert) SetID(id uint) {
	a.id = id
}

func (a *Alert) SetActionURL(url string) {
	a.actionURL = url
}

// SetRelatedEntity links the alert to the entity whose condition raised it.
func (a *Alert) SetRelatedEntity(entityType string, entityID uint) {
	a.relatedEntityType = &entityType
	a.relatedEntityID = &entityID
}

// Acknowledge marks the alert as seen. Re-acknowledging is allowed and
// simply records the latest caller and timestamp.
func (a *Alert) Acknowledge(byName string) error {
	if a.resolved {
		return fmt.Errorf("cannot acknowledge a resolved alert")
	}
	if strings.TrimSpace(byName) == "" {
		return fmt.Errorf("acknowledger name is required")
	}

	now := biztime.NowUTC()
	name := strings.TrimSpace(byName)
	a.acknowledged = true
	a.acknowledgedAt = &now
	a.acknowledgedByName = &name
	a.updatedAt = now
	return nil
}

// Resolve closes the alert. Resolution is terminal.
func (a *Alert) Resolve() error {
	if a.resolved {
		return fmt.Errorf("alert is already resolved")
	}

	now := biztime.NowUTC()
	a.resolved = true
	a.resolvedAt = &now
	a.updatedAt = now
	return nil
}
