package rules

import (
	"context"
	"io"
	"log/slog"
	"time"

	"caretrack/internal/domain/alert"
	"caretrack/internal/domain/staff"
	"caretrack/internal/shared/biztime"
	"caretrack/internal/shared/logger"
)

// fakeAlertRepo is an in-memory alert.Repository for rule tests.
type fakeAlertRepo struct {
	nextID    uint
	alerts    []*alert.Alert
	histories []*alert.History
}

func (f *fakeAlertRepo) Create(ctx context.Context, a *alert.Alert) error {
	f.nextID++
	a.SetID(f.nextID)
	f.alerts = append(f.alerts, a)
	return nil
}

func (f *fakeAlertRepo) Update(ctx context.Context, a *alert.Alert) error {
	return nil
}

func (f *fakeAlertRepo) GetByID(ctx context.Context, id uint) (*alert.Alert, error) {
	for _, a := range f.alerts {
		if a.ID() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAlertRepo) FindUnresolved(ctx context.Context, facilityID uint, alertType string, relatedEntityID *uint) (*alert.Alert, error) {
	for _, a := range f.alerts {
		if a.FacilityID() != facilityID || a.Type() != alertType || a.IsResolved() {
			continue
		}
		if !sameEntityID(a.RelatedEntityID(), relatedEntityID) {
			continue
		}
		return a, nil
	}
	return nil, nil
}

func sameEntityID(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (f *fakeAlertRepo) ListActiveByFacility(ctx context.Context, facilityID uint) ([]*alert.Alert, error) {
	var active []*alert.Alert
	for _, a := range f.alerts {
		if a.FacilityID() == facilityID && !a.IsResolved() {
			active = append(active, a)
		}
	}
	return active, nil
}

func (f *fakeAlertRepo) SummarizeByFacility(ctx context.Context, facilityID uint) (map[alert.Severity]alert.SeveritySummary, error) {
	summary := make(map[alert.Severity]alert.SeveritySummary)
	for _, a := range f.alerts {
		if a.FacilityID() != facilityID || a.IsResolved() {
			continue
		}
		s := summary[a.Severity()]
		s.Count++
		if !a.IsAcknowledged() {
			s.Unacknowledged++
		}
		summary[a.Severity()] = s
	}
	return summary, nil
}

func (f *fakeAlertRepo) CreateHistory(ctx context.Context, history *alert.History) error {
	f.histories = append(f.histories, history)
	return nil
}

func (f *fakeAlertRepo) ListHistoryByAlert(ctx context.Context, alertID uint) ([]*alert.History, error) {
	var histories []*alert.History
	for _, h := range f.histories {
		if h.AlertID() == alertID {
			histories = append(histories, h)
		}
	}
	return histories, nil
}

func (f *fakeAlertRepo) Transaction(ctx context.Context, fn func(alert.Repository) error) error {
	return fn(f)
}

// mockStaffRepo stubs the two staff.Repository reads the certification
// expiry rule performs.
type mockStaffRepo struct {
	listCertificationsByFacilityFn func(ctx context.Context, facilityID uint) ([]*staff.Certification, error)
	listByFacilityFn               func(ctx context.Context, facilityID uint, activeOnly bool) ([]*staff.StaffMember, error)
}

func (m *mockStaffRepo) Create(ctx context.Context, member *staff.StaffMember) error { return nil }
func (m *mockStaffRepo) Update(ctx context.Context, member *staff.StaffMember) error { return nil }
func (m *mockStaffRepo) GetByID(ctx context.Context, id uint) (*staff.StaffMember, error) {
	return nil, nil
}

func (m *mockStaffRepo) ListByFacility(ctx context.Context, facilityID uint, activeOnly bool) ([]*staff.StaffMember, error) {
	if m.listByFacilityFn != nil {
		return m.listByFacilityFn(ctx, facilityID, activeOnly)
	}
	return nil, nil
}

func (m *mockStaffRepo) CreateCertification(ctx context.Context, cert *staff.Certification) error {
	return nil
}

func (m *mockStaffRepo) UpdateCertification(ctx context.Context, cert *staff.Certification) error {
	return nil
}

func (m *mockStaffRepo) GetCertificationByID(ctx context.Context, id uint) (*staff.Certification, error) {
	return nil, nil
}

func (m *mockStaffRepo) ListCertificationsByStaffMember(ctx context.Context, staffMemberID uint) ([]*staff.Certification, error) {
	return nil, nil
}

func (m *mockStaffRepo) ListCertificationsByFacility(ctx context.Context, facilityID uint) ([]*staff.Certification, error) {
	if m.listCertificationsByFacilityFn != nil {
		return m.listCertificationsByFacilityFn(ctx, facilityID)
	}
	return nil, nil
}

func (m *mockStaffRepo) DeleteCertification(ctx context.Context, id uint) error { return nil }

func noopLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// daysFromNow returns noon in the business timezone d calendar days from
// today, as UTC. Building from calendar components keeps the day count exact
// across DST transitions.
func daysFromNow(d int) time.Time {
	n := biztime.NowUTC().In(biztime.Location())
	return time.Date(n.Year(), n.Month(), n.Day()+d, 12, 0, 0, 0, biztime.Location()).UTC()
}
