package alert

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretrack/internal/application/alert/rules"
	domain "caretrack/internal/domain/alert"
	"caretrack/internal/shared/errors"
	"caretrack/internal/shared/logger"
)

type mockAlertRepo struct {
	createFn        func(ctx context.Context, a *domain.Alert) error
	updateFn        func(ctx context.Context, a *domain.Alert) error
	getByIDFn       func(ctx context.Context, id uint) (*domain.Alert, error)
	summarizeFn     func(ctx context.Context, facilityID uint) (map[domain.Severity]domain.SeveritySummary, error)
	createHistoryFn func(ctx context.Context, h *domain.History) error
	listHistoryFn   func(ctx context.Context, alertID uint) ([]*domain.History, error)
}

func (m *mockAlertRepo) Create(ctx context.Context, a *domain.Alert) error {
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return nil
}

func (m *mockAlertRepo) Update(ctx context.Context, a *domain.Alert) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, a)
	}
	return nil
}

func (m *mockAlertRepo) GetByID(ctx context.Context, id uint) (*domain.Alert, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAlertRepo) FindUnresolved(ctx context.Context, facilityID uint, alertType string, relatedEntityID *uint) (*domain.Alert, error) {
	return nil, nil
}

func (m *mockAlertRepo) ListActiveByFacility(ctx context.Context, facilityID uint) ([]*domain.Alert, error) {
	return nil, nil
}

func (m *mockAlertRepo) SummarizeByFacility(ctx context.Context, facilityID uint) (map[domain.Severity]domain.SeveritySummary, error) {
	if m.summarizeFn != nil {
		return m.summarizeFn(ctx, facilityID)
	}
	return nil, nil
}

func (m *mockAlertRepo) CreateHistory(ctx context.Context, h *domain.History) error {
	if m.createHistoryFn != nil {
		return m.createHistoryFn(ctx, h)
	}
	return nil
}

func (m *mockAlertRepo) ListHistoryByAlert(ctx context.Context, alertID uint) ([]*domain.History, error) {
	if m.listHistoryFn != nil {
		return m.listHistoryFn(ctx, alertID)
	}
	return nil, nil
}

func (m *mockAlertRepo) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	return fn(m)
}

type stubRule struct {
	name       string
	evaluateFn func(ctx context.Context, facilityID uint, alerts domain.Repository) ([]*domain.Alert, error)
}

func (r *stubRule) Name() string { return r.name }

func (r *stubRule) Evaluate(ctx context.Context, facilityID uint, alerts domain.Repository) ([]*domain.Alert, error) {
	if r.evaluateFn != nil {
		return r.evaluateFn(ctx, facilityID, alerts)
	}
	return nil, nil
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testAlert(t *testing.T, facilityID uint, id uint) *domain.Alert {
	t.Helper()
	a, err := domain.NewAlert(facilityID, domain.TypeMissingSpotCheck, domain.SeverityWarning,
		"Ratio spot-checks incomplete", "Only 1 of 2 ratio spot-checks have been logged today.")
	require.NoError(t, err)
	a.SetID(id)
	return a
}

func TestService_GenerateAlerts(t *testing.T) {
	t.Run("collects alerts from every rule", func(t *testing.T) {
		ruleSet := []rules.Rule{
			&stubRule{name: "one", evaluateFn: func(ctx context.Context, facilityID uint, alerts domain.Repository) ([]*domain.Alert, error) {
				return []*domain.Alert{testAlert(t, facilityID, 1)}, nil
			}},
			&stubRule{name: "two", evaluateFn: func(ctx context.Context, facilityID uint, alerts domain.Repository) ([]*domain.Alert, error) {
				return []*domain.Alert{testAlert(t, facilityID, 2)}, nil
			}},
		}
		service := NewService(&mockAlertRepo{}, ruleSet, testLogger())

		resp, err := service.GenerateAlerts(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Generated)
		assert.Len(t, resp.Alerts, 2)
	})

	t.Run("a failing rule aborts the pass", func(t *testing.T) {
		ruleSet := []rules.Rule{
			&stubRule{name: "broken", evaluateFn: func(ctx context.Context, facilityID uint, alerts domain.Repository) ([]*domain.Alert, error) {
				return nil, stderrors.New("query timeout")
			}},
		}
		service := NewService(&mockAlertRepo{}, ruleSet, testLogger())

		_, err := service.GenerateAlerts(context.Background(), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})
}

func TestService_Acknowledge(t *testing.T) {
	t.Run("acknowledges and records history", func(t *testing.T) {
		a := testAlert(t, 1, 42)
		var recorded *domain.History
		repo := &mockAlertRepo{
			getByIDFn: func(ctx context.Context, id uint) (*domain.Alert, error) {
				return a, nil
			},
			createHistoryFn: func(ctx context.Context, h *domain.History) error {
				recorded = h
				return nil
			},
		}
		service := NewService(repo, nil, testLogger())

		resp, err := service.Acknowledge(context.Background(), 1, 42, AcknowledgeRequest{AcknowledgedByName: "Dana"})
		require.NoError(t, err)
		assert.True(t, resp.Acknowledged)
		require.NotNil(t, resp.AcknowledgedByName)
		assert.Equal(t, "Dana", *resp.AcknowledgedByName)
		require.NotNil(t, recorded)
		assert.Equal(t, domain.HistoryActionAcknowledged, recorded.Action())
	})

	t.Run("re-acknowledging records the latest caller", func(t *testing.T) {
		a := testAlert(t, 1, 42)
		require.NoError(t, a.Acknowledge("Dana"))
		repo := &mockAlertRepo{
			getByIDFn: func(ctx context.Context, id uint) (*domain.Alert, error) {
				return a, nil
			},
		}
		service := NewService(repo, nil, testLogger())

		resp, err := service.Acknowledge(context.Background(), 1, 42, AcknowledgeRequest{AcknowledgedByName: "Sam"})
		require.NoError(t, err)
		require.NotNil(t, resp.AcknowledgedByName)
		assert.Equal(t, "Sam", *resp.AcknowledgedByName)
	})

	t.Run("acknowledging a resolved alert conflicts", func(t *testing.T) {
		a := testAlert(t, 1, 42)
		require.NoError(t, a.Resolve())
		repo := &mockAlertRepo{
			getByIDFn: func(ctx context.Context, id uint) (*domain.Alert, error) {
				return a, nil
			},
		}
		service := NewService(repo, nil, testLogger())

		_, err := service.Acknowledge(context.Background(), 1, 42, AcknowledgeRequest{AcknowledgedByName: "Dana"})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("alert of another facility is not found", func(t *testing.T) {
		repo := &mockAlertRepo{
			getByIDFn: func(ctx context.Context, id uint) (*domain.Alert, error) {
				return testAlert(t, 2, 42), nil
			},
		}
		service := NewService(repo, nil, testLogger())

		_, err := service.Acknowledge(context.Background(), 1, 42, AcknowledgeRequest{AcknowledgedByName: "Dana"})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestService_Resolve(t *testing.T) {
	t.Run("defaults the actor to system", func(t *testing.T) {
		a := testAlert(t, 1, 42)
		var recorded *domain.History
		repo := &mockAlertRepo{
			getByIDFn: func(ctx context.Context, id uint) (*domain.Alert, error) {
				return a, nil
			},
			createHistoryFn: func(ctx context.Context, h *domain.History) error {
				recorded = h
				return nil
			},
		}
		service := NewService(repo, nil, testLogger())

		resp, err := service.Resolve(context.Background(), 1, 42, "")
		require.NoError(t, err)
		assert.True(t, resp.Resolved)
		require.NotNil(t, recorded)
		assert.Equal(t, rules.SystemActor, recorded.ActionByName())
	})

	t.Run("resolving twice conflicts", func(t *testing.T) {
		a := testAlert(t, 1, 42)
		require.NoError(t, a.Resolve())
		repo := &mockAlertRepo{
			getByIDFn: func(ctx context.Context, id uint) (*domain.Alert, error) {
				return a, nil
			},
		}
		service := NewService(repo, nil, testLogger())

		_, err := service.Resolve(context.Background(), 1, 42, "Dana")
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestService_Summary(t *testing.T) {
	repo := &mockAlertRepo{
		summarizeFn: func(ctx context.Context, facilityID uint) (map[domain.Severity]domain.SeveritySummary, error) {
			return map[domain.Severity]domain.SeveritySummary{
				domain.SeverityCritical: {Count: 2, Unacknowledged: 1},
				domain.SeverityWarning:  {Count: 4, Unacknowledged: 4},
			}, nil
		},
	}
	service := NewService(repo, nil, testLogger())

	resp, err := service.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Critical.Count)
	assert.Equal(t, int64(1), resp.Critical.Unacknowledged)
	assert.Equal(t, int64(4), resp.Warning.Count)
	assert.Equal(t, int64(0), resp.Info.Count)
}
