package document

import (
	"fmt"
	"strings"
	"time"

	"caretrack/internal/shared/biztime"
)

type Status string

const (
	StatusCurrent  Status = "current"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
	StatusMissing  Status = "missing"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusCurrent, StatusExpiring, StatusExpired, StatusMissing:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// expiringWindowDays is the lead time before expiry at which a document is
// flagged as expiring.
const expiringWindowDays = 30

// Document is a facility compliance record such as a license or inspection
// report. A document with no file on record carries status "missing".
type Document struct {
	id         uint
	facilityID uint
	name       string
	docType    string
	status     Status
	issuedAt   *time.Time
	expiresAt  *time.Time
	fileURL    string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewDocument(facilityID uint, name, docType string, issuedAt, expiresAt *time.Time, fileURL string) (*Document, error) {
	if facilityID == 0 {
		return nil, fmt.Errorf("facility ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("document name is required")
	}
	if strings.TrimSpace(docType) == "" {
		return nil, fmt.Errorf("document type is required")
	}

	now := biztime.NowUTC()
	d := &Document{
		facilityID: facilityID,
		name:       strings.TrimSpace(name),
		docType:    strings.TrimSpace(docType),
		issuedAt:   issuedAt,
		expiresAt:  expiresAt,
		fileURL:    strings.TrimSpace(fileURL),
		createdAt:  now,
		updatedAt:  now,
	}
	d.status = d.deriveStatus(now)
	return d, nil
}

func ReconstructDocument(
	id uint,
	facilityID uint,
	name string,
	docType string,
	status Status,
	issuedAt *time.Time,
	expiresAt *time.Time,
	fileURL string,
	createdAt time.Time,
	updatedAt time.Time,
) *Document {
	return &Document{
		id:         id,
		facilityID: facilityID,
		name:       name,
		docType:    docType,
		status:     status,
		issuedAt:   issuedAt,
		expiresAt:  expiresAt,
		fileURL:    fileURL,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (d *Document) ID() uint              { return d.id }
func (d *Document) FacilityID() uint      { return d.facilityID }
func (d *Document) Name() string          { return d.name }
func (d *Document) Type() string          { return d.docType }
func (d *Document) Status() Status        { return d.status }
func (d *Document) IssuedAt() *time.Time  { return d.issuedAt }
func (d *Document) ExpiresAt() *time.Time { return d.expiresAt }
func (d *Document) FileURL() string       { return d.fileURL }
func (d *Document) CreatedAt() time.Time  { return d.createdAt }
func (d *Document) UpdatedAt() time.Time  { return d.updatedAt }

func (d *Document) SetID(id uint) {
	d.id = id
}

// deriveStatus computes the status from the file and expiry dates. A
// document with no file is missing regardless of dates.
func (d *Document) deriveStatus(now time.Time) Status {
	if d.fileURL == "" {
		return StatusMissing
	}
	if d.expiresAt == nil {
		return StatusCurrent
	}

	expiry := biztime.StartOfDayUTC(*d.expiresAt)
	today := biztime.StartOfDayUTC(now)
	if expiry.Before(today) {
		return StatusExpired
	}
	if expiry.Before(today.Add(expiringWindowDays * 24 * time.Hour)) {
		return StatusExpiring
	}
	return StatusCurrent
}

// RefreshStatus re-derives the status. Callers persist the document after a
// status change.
func (d *Document) RefreshStatus(now time.Time) bool {
	next := d.deriveStatus(now)
	if next == d.status {
		return false
	}
	d.status = next
	d.updatedAt = biztime.NowUTC()
	return true
}

// AttachFile records a newly uploaded file and re-derives the status.
func (d *Document) AttachFile(fileURL string, issuedAt, expiresAt *time.Time) error {
	if strings.TrimSpace(fileURL) == "" {
		return fmt.Errorf("file URL is required")
	}

	d.fileURL = strings.TrimSpace(fileURL)
	if issuedAt != nil {
		d.issuedAt = issuedAt
	}
	if expiresAt != nil {
		d.expiresAt = expiresAt
	}
	now := biztime.NowUTC()
	d.status = d.deriveStatus(now)
	d.updatedAt = now
	return nil
}

func (d *Document) UpdateDetails(name, docType string, expiresAt *time.Time) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("document name is required")
	}
	if strings.TrimSpace(docType) == "" {
		return fmt.Errorf("document type is required")
	}

	d.name = strings.TrimSpace(name)
	d.docType = strings.TrimSpace(docType)
	if expiresAt != nil {
		d.expiresAt = expiresAt
	}
	now := biztime.NowUTC()
	d.status = d.deriveStatus(now)
	d.updatedAt = now
	return nil
}
