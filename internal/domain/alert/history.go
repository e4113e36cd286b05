package alert

import (
	"time"

	"caretrack/internal/shared/biztime"
)

// HistoryAction labels one lifecycle transition in the audit trail.
type HistoryAction string

const (
	HistoryActionCreated      HistoryAction = "created"
	HistoryActionAcknowledged HistoryAction = "acknowledged"
	HistoryActionResolved     HistoryAction = "resolved"
)

// History is one append-only audit row; one per lifecycle transition.
type History struct {
	id           uint
	alertID      uint
	action       HistoryAction
	actionByName string
	createdAt    time.Time
}

func NewHistory(alertID uint, action HistoryAction, actionByName string) *History {
	return &History{
		alertID:      alertID,
		action:       action,
		actionByName: actionByName,
		createdAt:    biztime.NowUTC(),
	}
}

func ReconstructHistory(id, alertID uint, action HistoryAction, actionByName string, createdAt time.Time) *History {
	return &History{
		id:           id,
		alertID:      alertID,
		action:       action,
		actionByName: actionByName,
		createdAt:    createdAt,
	}
}

func (h *History) ID() uint              { return h.id }
func (h *History) AlertID() uint         { return h.alertID }
func (h *History) Action() HistoryAction { return h.action }
func (h *History) ActionByName() string  { return h.actionByName }
func (h *History) CreatedAt() time.Time  { return h.createdAt }

func (h *History) SetID(id uint) {
	h.id = id
}
