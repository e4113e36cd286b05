package checklist

import (
	"fmt"
	"strings"
	"time"

	"caretrack/internal/shared/biztime"
)

// Item is one checklist line, completed or not.
type Item struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// Checklist is a room's daily opening/closing checklist. One checklist
// exists per room per business day.
type Checklist struct {
	id            uint
	facilityID    uint
	roomID        uint
	checklistDate string
	items         []Item
	completedBy   string
	completedAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewChecklist opens a checklist for the current business day.
func NewChecklist(facilityID, roomID uint, items []Item) (*Checklist, error) {
	if facilityID == 0 {
		return nil, fmt.Errorf("facility ID is required")
	}
	if roomID == 0 {
		return nil, fmt.Errorf("room ID is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("at least one checklist item is required")
	}
	for _, item := range items {
		if strings.TrimSpace(item.Label) == "" {
			return nil, fmt.Errorf("checklist item label cannot be empty")
		}
	}

	now := biztime.NowUTC()
	return &Checklist{
		facilityID:    facilityID,
		roomID:        roomID,
		checklistDate: biztime.DateString(now),
		items:         items,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructChecklist(
	id uint,
	facilityID uint,
	roomID uint,
	checklistDate string,
	items []Item,
	completedBy string,
	completedAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) *Checklist {
	return &Checklist{
		id:            id,
		facilityID:    facilityID,
		roomID:        roomID,
		checklistDate: checklistDate,
		items:         items,
		completedBy:   completedBy,
		completedAt:   completedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (c *Checklist) ID() uint                { return c.id }
func (c *Checklist) FacilityID() uint        { return c.facilityID }
func (c *Checklist) RoomID() uint            { return c.roomID }
func (c *Checklist) ChecklistDate() string   { return c.checklistDate }
func (c *Checklist) Items() []Item           { return c.items }
func (c *Checklist) CompletedBy() string     { return c.completedBy }
func (c *Checklist) CompletedAt() *time.Time { return c.completedAt }
func (c *Checklist) CreatedAt() time.Time    { return c.createdAt }
func (c *Checklist) UpdatedAt() time.Time    { return c.updatedAt }

func (c *Checklist) SetID(id uint) {
	c.id = id
}

func (c *Checklist) IsComplete() bool {
	return c.completedAt != nil
}

// UpdateItems replaces the item states. Completed checklists are frozen.
func (c *Checklist) UpdateItems(items []Item) error {
	if c.IsComplete() {
		return fmt.Errorf("checklist is already completed")
	}
	if len(items) == 0 {
		return fmt.Errorf("at least one checklist item is required")
	}

	c.items = items
	c.updatedAt = biztime.NowUTC()
	return nil
}

// Complete closes the checklist. Every item must be done.
func (c *Checklist) Complete(byName string) error {
	if c.IsComplete() {
		return fmt.Errorf("checklist is already completed")
	}
	if strings.TrimSpace(byName) == "" {
		return fmt.Errorf("completer name is required")
	}
	for _, item := range c.items {
		if !item.Done {
			return fmt.Errorf("checklist item %q is not done", item.Label)
		}
	}

	now := biztime.NowUTC()
	c.completedBy = strings.TrimSpace(byName)
	c.completedAt = &now
	c.updatedAt = now
	return nil
}
