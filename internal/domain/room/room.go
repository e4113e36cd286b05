package room

import (
	"fmt"
	"time"

	"caretrack/internal/shared/biztime"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusArchived
}

func (s Status) String() string {
	return string(s)
}

// Room is a licensed classroom within a facility. Its required ratio is the
// staff-to-children ratio licensing rules demand for its age group.
type Room struct {
	id            uint
	facilityID    uint
	name          string
	ageGroup      AgeGroup
	requiredRatio Ratio
	capacity      int
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

// NewRoom creates an active room. When ratio is zero-valued the age group's
// licensing default applies.
func NewRoom(facilityID uint, name string, ageGroup AgeGroup, ratio Ratio, capacity int) (*Room, error) {
	if facilityID == 0 {
		return nil, fmt.Errorf("facility ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("room name is required")
	}
	if !ageGroup.IsValid() {
		return nil, fmt.Errorf("invalid age group: %s", ageGroup)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("capacity cannot be negative")
	}

	if ratio.IsZero() {
		ratio = ageGroup.DefaultRatio()
	}

	now := biztime.NowUTC()
	return &Room{
		facilityID:    facilityID,
		name:          name,
		ageGroup:      ageGroup,
		requiredRatio: ratio,
		capacity:      capacity,
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructRoom rebuilds a room from persistence without validation.
func ReconstructRoom(
	id uint,
	facilityID uint,
	name string,
	ageGroup AgeGroup,
	requiredRatio Ratio,
	capacity int,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) *Room {
	return &Room{
		id:            id,
		facilityID:    facilityID,
		name:          name,
		ageGroup:      ageGroup,
		requiredRatio: requiredRatio,
		capacity:      capacity,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Room) ID() uint             { return r.id }
func (r *Room) FacilityID() uint     { return r.facilityID }
func (r *Room) Name() string         { return r.name }
func (r *Room) AgeGroup() AgeGroup   { return r.ageGroup }
func (r *Room) RequiredRatio() Ratio { return r.requiredRatio }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Status() Status       { return r.status }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

func (r *Room) SetID(id uint) {
	r.id = id
}

func (r *Room) IsActive() bool {
	return r.status == StatusActive
}

// Archive retires the room. Archived rooms keep their spot-check history but
// accept no new checks.
func (r *Room) Archive() error {
	if r.status == StatusArchived {
		return fmt.Errorf("room is already archived")
	}
	r.status = StatusArchived
	r.updatedAt = biztime.NowUTC()
	return nil
}

// UpdateDetails changes the room's mutable attributes. A zero-valued ratio
// leaves the current required ratio in place.
func (r *Room) UpdateDetails(name string, ratio Ratio, capacity int) error {
	if name == "" {
		return fmt.Errorf("room name is required")
	}
	if capacity < 0 {
		return fmt.Errorf("capacity cannot be negative")
	}

	r.name = name
	if !ratio.IsZero() {
		r.requiredRatio = ratio
	}
	r.capacity = capacity
	r.updatedAt = biztime.NowUTC()
	return nil
}
