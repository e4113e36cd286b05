package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretrack/internal/application/alert"
	"caretrack/internal/interfaces/http/handlers/testutil"
	"caretrack/internal/shared/errors"
)

type mockAlertService struct {
	generateAlertsFn func(ctx context.Context, facilityID uint) (*alert.GenerateAlertsResponse, error)
	listActiveFn     func(ctx context.Context, facilityID uint) ([]*alert.AlertResponse, error)
	acknowledgeFn    func(ctx context.Context, facilityID, alertID uint, req alert.AcknowledgeRequest) (*alert.AlertResponse, error)
	resolveFn        func(ctx context.Context, facilityID, alertID uint, byName string) (*alert.AlertResponse, error)
	summaryFn        func(ctx context.Context, facilityID uint) (*alert.SummaryResponse, error)
	historyFn        func(ctx context.Context, facilityID, alertID uint) ([]*alert.HistoryResponse, error)
}

func (m *mockAlertService) GenerateAlerts(ctx context.Context, facilityID uint) (*alert.GenerateAlertsResponse, error) {
	if m.generateAlertsFn != nil {
		return m.generateAlertsFn(ctx, facilityID)
	}
	return nil, nil
}

func (m *mockAlertService) ListActive(ctx context.Context, facilityID uint) ([]*alert.AlertResponse, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx, facilityID)
	}
	return nil, nil
}

func (m *mockAlertService) Acknowledge(ctx context.Context, facilityID, alertID uint, req alert.AcknowledgeRequest) (*alert.AlertResponse, error) {
	if m.acknowledgeFn != nil {
		return m.acknowledgeFn(ctx, facilityID, alertID, req)
	}
	return nil, nil
}

func (m *mockAlertService) Resolve(ctx context.Context, facilityID, alertID uint, byName string) (*alert.AlertResponse, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, facilityID, alertID, byName)
	}
	return nil, nil
}

func (m *mockAlertService) Summary(ctx context.Context, facilityID uint) (*alert.SummaryResponse, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, facilityID)
	}
	return nil, nil
}

func (m *mockAlertService) History(ctx context.Context, facilityID, alertID uint) ([]*alert.HistoryResponse, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, facilityID, alertID)
	}
	return nil, nil
}

func TestAlertHandler_GenerateAlerts(t *testing.T) {
	t.Run("reports newly generated alerts", func(t *testing.T) {
		service := &mockAlertService{
			generateAlertsFn: func(ctx context.Context, facilityID uint) (*alert.GenerateAlertsResponse, error) {
				assert.Equal(t, uint(3), facilityID)
				return &alert.GenerateAlertsResponse{
					Generated: 2,
					Alerts: []*alert.AlertResponse{
						{ID: 10, AlertType: "cert_expiring", Severity: "warning"},
						{ID: 11, AlertType: "missing_spot_check", Severity: "warning"},
					},
				}, nil
			},
		}
		handler := NewAlertHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/facilities/3/alerts/generate", nil)
		testutil.SetAuthContext(c, 3, "Dana")

		handler.GenerateAlerts(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp GenerateAlertsEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.Generated)
		require.Len(t, resp.Alerts, 2)
		assert.Equal(t, "cert_expiring", resp.Alerts[0].AlertType)
	})

	t.Run("requires auth context", func(t *testing.T) {
		handler := NewAlertHandler(&mockAlertService{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/facilities/3/alerts/generate", nil)

		handler.GenerateAlerts(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAlertHandler_Acknowledge(t *testing.T) {
	t.Run("acknowledges an active alert", func(t *testing.T) {
		service := &mockAlertService{
			acknowledgeFn: func(ctx context.Context, facilityID, alertID uint, req alert.AcknowledgeRequest) (*alert.AlertResponse, error) {
				assert.Equal(t, uint(3), facilityID)
				assert.Equal(t, uint(42), alertID)
				assert.Equal(t, "Dana", req.AcknowledgedByName)
				return &alert.AlertResponse{ID: alertID, Acknowledged: true}, nil
			},
		}
		handler := NewAlertHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/facilities/3/alerts/42/acknowledge", alert.AcknowledgeRequest{
			AcknowledgedByName: "Dana",
		})
		testutil.SetAuthContext(c, 3, "Dana")
		testutil.SetURLParam(c, "id", "42")

		handler.Acknowledge(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects invalid alert id", func(t *testing.T) {
		handler := NewAlertHandler(&mockAlertService{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/facilities/3/alerts/abc/acknowledge", alert.AcknowledgeRequest{
			AcknowledgedByName: "Dana",
		})
		testutil.SetAuthContext(c, 3, "Dana")
		testutil.SetURLParam(c, "id", "abc")

		handler.Acknowledge(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("propagates conflict from the service", func(t *testing.T) {
		service := &mockAlertService{
			acknowledgeFn: func(ctx context.Context, facilityID, alertID uint, req alert.AcknowledgeRequest) (*alert.AlertResponse, error) {
				return nil, errors.NewConflictError("alert is already resolved")
			},
		}
		handler := NewAlertHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/facilities/3/alerts/42/acknowledge", alert.AcknowledgeRequest{
			AcknowledgedByName: "Dana",
		})
		testutil.SetAuthContext(c, 3, "Dana")
		testutil.SetURLParam(c, "id", "42")

		handler.Acknowledge(c)

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "conflict", resp.Error.Type)
	})
}

func TestAlertHandler_Resolve(t *testing.T) {
	t.Run("resolves using the actor from the token", func(t *testing.T) {
		service := &mockAlertService{
			resolveFn: func(ctx context.Context, facilityID, alertID uint, byName string) (*alert.AlertResponse, error) {
				assert.Equal(t, uint(42), alertID)
				assert.Equal(t, "Dana", byName)
				return &alert.AlertResponse{ID: alertID, Resolved: true}, nil
			},
		}
		handler := NewAlertHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/facilities/3/alerts/42/resolve", nil)
		testutil.SetAuthContext(c, 3, "Dana")
		testutil.SetURLParam(c, "id", "42")

		handler.Resolve(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns not found for foreign alert", func(t *testing.T) {
		service := &mockAlertService{
			resolveFn: func(ctx context.Context, facilityID, alertID uint, byName string) (*alert.AlertResponse, error) {
				return nil, errors.NewNotFoundError("alert")
			},
		}
		handler := NewAlertHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/facilities/3/alerts/42/resolve", nil)
		testutil.SetAuthContext(c, 3, "Dana")
		testutil.SetURLParam(c, "id", "42")

		handler.Resolve(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAlertHandler_Summary(t *testing.T) {
	service := &mockAlertService{
		summaryFn: func(ctx context.Context, facilityID uint) (*alert.SummaryResponse, error) {
			return &alert.SummaryResponse{
				Critical: alert.SeverityCounts{Count: 1, Unacknowledged: 1},
				Warning:  alert.SeverityCounts{Count: 3, Unacknowledged: 2},
			}, nil
		},
	}
	handler := NewAlertHandler(service, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/facilities/3/alerts/summary", nil)
	testutil.SetAuthContext(c, 3, "Dana")

	handler.Summary(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"critical"`)
}
