package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretrack/internal/application/spotcheck"
	spotcheckdomain "caretrack/internal/domain/spotcheck"
	"caretrack/internal/interfaces/http/handlers/testutil"
	"caretrack/internal/shared/errors"
)

type mockSpotCheckService struct {
	createSpotCheckFn func(ctx context.Context, facilityID uint, req spotcheck.CreateSpotCheckRequest) (*spotcheck.SpotCheckResponse, error)
	listTodayFn       func(ctx context.Context, facilityID uint) ([]*spotcheck.SpotCheckResponse, error)
	historyFn         func(ctx context.Context, facilityID uint, days int) ([]spotcheckdomain.DailySummary, error)
	reminderStatusFn  func(ctx context.Context, facilityID uint) (*spotcheck.ReminderStatusResponse, error)
}

func (m *mockSpotCheckService) CreateSpotCheck(ctx context.Context, facilityID uint, req spotcheck.CreateSpotCheckRequest) (*spotcheck.SpotCheckResponse, error) {
	if m.createSpotCheckFn != nil {
		return m.createSpotCheckFn(ctx, facilityID, req)
	}
	return nil, nil
}

func (m *mockSpotCheckService) ListToday(ctx context.Context, facilityID uint) ([]*spotcheck.SpotCheckResponse, error) {
	if m.listTodayFn != nil {
		return m.listTodayFn(ctx, facilityID)
	}
	return nil, nil
}

func (m *mockSpotCheckService) History(ctx context.Context, facilityID uint, days int) ([]spotcheckdomain.DailySummary, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, facilityID, days)
	}
	return nil, nil
}

func (m *mockSpotCheckService) ReminderStatus(ctx context.Context, facilityID uint) (*spotcheck.ReminderStatusResponse, error) {
	if m.reminderStatusFn != nil {
		return m.reminderStatusFn(ctx, facilityID)
	}
	return nil, nil
}

func TestSpotCheckHandler_CreateSpotCheck(t *testing.T) {
	t.Run("logs a compliant check", func(t *testing.T) {
		service := &mockSpotCheckService{
			createSpotCheckFn: func(ctx context.Context, facilityID uint, req spotcheck.CreateSpotCheckRequest) (*spotcheck.SpotCheckResponse, error) {
				assert.Equal(t, uint(7), facilityID)
				assert.Equal(t, 11, req.ChildrenCount)
				return &spotcheck.SpotCheckResponse{
					ID:            1,
					FacilityID:    facilityID,
					RoomName:      "Toddler A",
					ChildrenCount: req.ChildrenCount,
					StaffCount:    req.StaffCount,
					RequiredRatio: "1:6",
					IsCompliant:   true,
					CheckMethod:   "in_person",
				}, nil
			},
		}
		handler := NewSpotCheckHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/facilities/7/ratio-checks", spotcheck.CreateSpotCheckRequest{
			RoomName:      "Toddler A",
			RequiredRatio: "1:6",
			ChildrenCount: 11,
			StaffCount:    2,
			CheckMethod:   "in_person",
			CheckedByName: "Dana",
		})
		testutil.SetAuthContext(c, 7, "Dana")

		handler.CreateSpotCheck(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
	})

	t.Run("rejects unknown check method", func(t *testing.T) {
		service := &mockSpotCheckService{
			createSpotCheckFn: func(ctx context.Context, facilityID uint, req spotcheck.CreateSpotCheckRequest) (*spotcheck.SpotCheckResponse, error) {
				return nil, errors.NewValidationError("invalid check method: drive_by")
			},
		}
		handler := NewSpotCheckHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/facilities/7/ratio-checks", spotcheck.CreateSpotCheckRequest{
			RoomName:      "Toddler A",
			RequiredRatio: "1:6",
			CheckMethod:   "drive_by",
			CheckedByName: "Dana",
		})
		testutil.SetAuthContext(c, 7, "Dana")

		handler.CreateSpotCheck(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "validation_error", resp.Error.Type)
	})

	t.Run("rejects unauthenticated request", func(t *testing.T) {
		handler := NewSpotCheckHandler(&mockSpotCheckService{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/facilities/7/ratio-checks", spotcheck.CreateSpotCheckRequest{})

		handler.CreateSpotCheck(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSpotCheckHandler_History(t *testing.T) {
	t.Run("clamps days to the maximum window", func(t *testing.T) {
		var gotDays int
		service := &mockSpotCheckService{
			historyFn: func(ctx context.Context, facilityID uint, days int) ([]spotcheckdomain.DailySummary, error) {
				gotDays = days
				return []spotcheckdomain.DailySummary{}, nil
			},
		}
		handler := NewSpotCheckHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/facilities/7/ratio-checks/history", nil)
		testutil.SetAuthContext(c, 7, "Dana")
		testutil.SetQueryParams(c, map[string]string{"days": "500"})

		handler.History(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 90, gotDays)
	})

	t.Run("defaults to seven days", func(t *testing.T) {
		var gotDays int
		service := &mockSpotCheckService{
			historyFn: func(ctx context.Context, facilityID uint, days int) ([]spotcheckdomain.DailySummary, error) {
				gotDays = days
				return nil, nil
			},
		}
		handler := NewSpotCheckHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/facilities/7/ratio-checks/history", nil)
		testutil.SetAuthContext(c, 7, "Dana")

		handler.History(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 7, gotDays)
	})
}

func TestSpotCheckHandler_ReminderStatus(t *testing.T) {
	next := "14:30"
	service := &mockSpotCheckService{
		reminderStatusFn: func(ctx context.Context, facilityID uint) (*spotcheck.ReminderStatusResponse, error) {
			return &spotcheck.ReminderStatusResponse{
				NextCheckDue:         &next,
				ChecksCompletedToday: 1,
				ChecksDueToday:       2,
				CheckTimes:           []string{"09:30", "14:30"},
			}, nil
		},
	}
	handler := NewSpotCheckHandler(service, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/facilities/7/ratio-checks/reminder-status", nil)
	testutil.SetAuthContext(c, 7, "Dana")

	handler.ReminderStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"next_check_due":"14:30"`)
}
