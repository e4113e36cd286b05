package medication

import (
	"fmt"
	"strings"
	"time"

	"caretrack/internal/shared/biztime"
)

// Log is one medication administration record. Records are append-only;
// corrections are made by logging a new entry, never by editing.
type Log struct {
	id             uint
	facilityID     uint
	childName      string
	medicationName string
	dosage         string
	administeredBy string
	administeredAt time.Time
	witnessedBy    string
	notes          string
	createdAt      time.Time
}

func NewLog(
	facilityID uint,
	childName string,
	medicationName string,
	dosage string,
	administeredBy string,
	administeredAt time.Time,
	witnessedBy string,
	notes string,
) (*Log, error) {
	if facilityID == 0 {
		return nil, fmt.Errorf("facility ID is required")
	}
	if strings.TrimSpace(childName) == "" {
		return nil, fmt.Errorf("child name is required")
	}
	if strings.TrimSpace(medicationName) == "" {
		return nil, fmt.Errorf("medication name is required")
	}
	if strings.TrimSpace(dosage) == "" {
		return nil, fmt.Errorf("dosage is required")
	}
	if strings.TrimSpace(administeredBy) == "" {
		return nil, fmt.Errorf("administering staff name is required")
	}
	if administeredAt.IsZero() {
		return nil, fmt.Errorf("administration time is required")
	}

	return &Log{
		facilityID:     facilityID,
		childName:      strings.TrimSpace(childName),
		medicationName: strings.TrimSpace(medicationName),
		dosage:         strings.TrimSpace(dosage),
		administeredBy: strings.TrimSpace(administeredBy),
		administeredAt: administeredAt.UTC(),
		witnessedBy:    strings.TrimSpace(witnessedBy),
		notes:          strings.TrimSpace(notes),
		createdAt:      biztime.NowUTC(),
	}, nil
}

func ReconstructLog(
	id uint,
	facilityID uint,
	childName string,
	medicationName string,
	dosage string,
	administeredBy string,
	administeredAt time.Time,
	witnessedBy string,
	notes string,
	createdAt time.Time,
) *Log {
	return &Log{
		id:             id,
		facilityID:     facilityID,
		childName:      childName,
		medicationName: medicationName,
		dosage:         dosage,
		administeredBy: administeredBy,
		administeredAt: administeredAt,
		witnessedBy:    witnessedBy,
		notes:          notes,
		createdAt:      createdAt,
	}
}

func (l *Log) ID() uint                  { return l.id }
func (l *Log) FacilityID() uint          { return l.facilityID }
func (l *Log) ChildName() string         { return l.childName }
func (l *Log) MedicationName() string    { return l.medicationName }
func (l *Log) Dosage() string            { return l.dosage }
func (l *Log) AdministeredBy() string    { return l.administeredBy }
func (l *Log) AdministeredAt() time.Time { return l.administeredAt }
func (l *Log) WitnessedBy() string       { return l.witnessedBy }
func (l *Log) Notes() string             { return l.notes }
func (l *Log) CreatedAt() time.Time      { return l.createdAt }

func (l *Log) SetID(id uint) {
	l.id = id
}
