package spotcheck

import (
	"fmt"
	"strings"
	"time"

	"caretrack/internal/domain/room"
	"caretrack/internal/shared/biztime"
	"caretrack/internal/shared/constants"
)

// SpotCheck is one point-in-time ratio observation. It snapshots the room
// name and required ratio at check time so the record stays meaningful if
// the room is later renamed or archived. Records are immutable once created.
type SpotCheck struct {
	id               uint
	facilityID       uint
	roomID           *uint
	roomName         string
	checkDate        string
	checkTime        string
	childrenCount    int
	staffCount       int
	requiredRatio    room.Ratio
	isCompliant      bool
	checkMethod      CheckMethod
	checkMethodOther string
	checkedByName    string
	notes            string
	createdAt        time.Time
}

// NewSpotCheck validates the observation, computes compliance, and stamps
// the record with the server-side current date and time in the facility's
// business timezone. Client-supplied timestamps are never accepted.
func NewSpotCheck(
	facilityID uint,
	roomID *uint,
	roomName string,
	requiredRatio room.Ratio,
	staffCount int,
	childrenCount int,
	method CheckMethod,
	methodOther string,
	checkedByName string,
	notes string,
) (*SpotCheck, error) {
	if facilityID == 0 {
		return nil, fmt.Errorf("facility ID is required")
	}
	if strings.TrimSpace(roomName) == "" {
		return nil, fmt.Errorf("room name is required")
	}
	if strings.TrimSpace(checkedByName) == "" {
		return nil, fmt.Errorf("checked by name is required")
	}
	if staffCount < 0 {
		return nil, fmt.Errorf("staff count cannot be negative")
	}
	if childrenCount < 0 {
		return nil, fmt.Errorf("children count cannot be negative")
	}
	if requiredRatio.IsZero() {
		return nil, fmt.Errorf("required ratio is required")
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid check method: %s", method)
	}

	methodOther = strings.TrimSpace(methodOther)
	if method == CheckMethodOther {
		if methodOther == "" {
			return nil, fmt.Errorf("check method description is required when method is other")
		}
		if r := []rune(methodOther); len(r) > constants.CheckMethodOtherMaxLen {
			methodOther = string(r[:constants.CheckMethodOtherMaxLen])
		}
	} else {
		methodOther = ""
	}

	now := biztime.NowUTC()
	return &SpotCheck{
		facilityID:       facilityID,
		roomID:           roomID,
		roomName:         strings.TrimSpace(roomName),
		checkDate:        biztime.DateString(now),
		checkTime:        biztime.TimeString(now),
		childrenCount:    childrenCount,
		staffCount:       staffCount,
		requiredRatio:    requiredRatio,
		isCompliant:      requiredRatio.IsSatisfiedBy(staffCount, childrenCount),
		checkMethod:      method,
		checkMethodOther: methodOther,
		checkedByName:    strings.TrimSpace(checkedByName),
		notes:            strings.TrimSpace(notes),
		createdAt:        now,
	}, nil
}

// ReconstructSpotCheck rebuilds a spot-check from persistence without
// validation or recomputation.
func ReconstructSpotCheck(
	id uint,
	facilityID uint,
	roomID *uint,
	roomName string,
	checkDate string,
	checkTime string,
	childrenCount int,
	staffCount int,
	requiredRatio room.Ratio,
	isCompliant bool,
	method CheckMethod,
	methodOther string,
	checkedByName string,
	notes string,
	createdAt time.Time,
) *SpotCheck {
	return &SpotCheck{
		id:               id,
		facilityID:       facilityID,
		roomID:           roomID,
		roomName:         roomName,
		checkDate:        checkDate,
		checkTime:        checkTime,
		childrenCount:    childrenCount,
		staffCount:       staffCount,
		requiredRatio:    requiredRatio,
		isCompliant:      isCompliant,
		checkMethod:      method,
		checkMethodOther: methodOther,
		checkedByName:    checkedByName,
		notes:            notes,
		createdAt:        createdAt,
	}
}

func (s *SpotCheck) ID() uint                 { return s.id }
func (s *SpotCheck) FacilityID() uint         { return s.facilityID }
func (s *SpotCheck) RoomID() *uint            { return s.roomID }
func (s *SpotCheck) RoomName() string         { return s.roomName }
func (s *SpotCheck) CheckDate() string        { return s.checkDate }
func (s *SpotCheck) CheckTime() string        { return s.checkTime }
func (s *SpotCheck) ChildrenCount() int       { return s.childrenCount }
func (s *SpotCheck) StaffCount() int          { return s.staffCount }
func (s *SpotCheck) RequiredRatio() room.Ratio { return s.requiredRatio }
func (s *SpotCheck) IsCompliant() bool        { return s.isCompliant }
func (s *SpotCheck) CheckMethod() CheckMethod { return s.checkMethod }
func (s *SpotCheck) CheckMethodOther() string { return s.checkMethodOther }
func (s *SpotCheck) CheckedByName() string    { return s.checkedByName }
func (s *SpotCheck) Notes() string            { return s.notes }
func (s *SpotCheck) CreatedAt() time.Time     { return s.createdAt }

func (s *SpotCheck) SetID(id uint) {
	s.id = id
}
