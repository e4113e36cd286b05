package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretrack/internal/domain/alert"
	"caretrack/internal/domain/spotcheck"
)

type mockSpotCheckRepo struct {
	countByFacilityAndDateFn func(ctx context.Context, facilityID uint, checkDate string) (int64, error)
}

func (m *mockSpotCheckRepo) Create(ctx context.Context, check *spotcheck.SpotCheck) error {
	return nil
}

func (m *mockSpotCheckRepo) ListByFacilityAndDate(ctx context.Context, facilityID uint, checkDate string) ([]*spotcheck.SpotCheck, error) {
	return nil, nil
}

func (m *mockSpotCheckRepo) CountByFacilityAndDate(ctx context.Context, facilityID uint, checkDate string) (int64, error) {
	if m.countByFacilityAndDateFn != nil {
		return m.countByFacilityAndDateFn(ctx, facilityID, checkDate)
	}
	return 0, nil
}

func (m *mockSpotCheckRepo) DailySummaries(ctx context.Context, facilityID uint, fromDate, toDate string) ([]spotcheck.DailySummary, error) {
	return nil, nil
}

func checkCountRepo(count int64) *mockSpotCheckRepo {
	return &mockSpotCheckRepo{
		countByFacilityAndDateFn: func(ctx context.Context, facilityID uint, checkDate string) (int64, error) {
			return count, nil
		},
	}
}

func TestMissingSpotCheckRule_RaisesWhenBelowQuota(t *testing.T) {
	rule := NewMissingSpotCheckRule(checkCountRepo(1), noopLogger())
	repo := &fakeAlertRepo{}

	created, err := rule.Evaluate(context.Background(), 1, repo)
	require.NoError(t, err)
	require.Len(t, created, 1)

	a := created[0]
	assert.Equal(t, alert.TypeMissingSpotCheck, a.Type())
	assert.Equal(t, alert.SeverityWarning, a.Severity())
	assert.Nil(t, a.RelatedEntityID())
	assert.Contains(t, a.Message(), "1 of 2")
}

func TestMissingSpotCheckRule_Dedup(t *testing.T) {
	rule := NewMissingSpotCheckRule(checkCountRepo(0), noopLogger())
	repo := &fakeAlertRepo{}

	first, err := rule.Evaluate(context.Background(), 1, repo)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := rule.Evaluate(context.Background(), 1, repo)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Len(t, repo.alerts, 1)
}

func TestMissingSpotCheckRule_AutoResolvesWhenQuotaMet(t *testing.T) {
	repo := &fakeAlertRepo{}

	rule := NewMissingSpotCheckRule(checkCountRepo(0), noopLogger())
	created, err := rule.Evaluate(context.Background(), 1, repo)
	require.NoError(t, err)
	require.Len(t, created, 1)
	open := created[0]

	rule = NewMissingSpotCheckRule(checkCountRepo(2), noopLogger())
	resolved, err := rule.Evaluate(context.Background(), 1, repo)
	require.NoError(t, err)
	assert.Empty(t, resolved)
	assert.True(t, open.IsResolved())

	histories, err := repo.ListHistoryByAlert(context.Background(), open.ID())
	require.NoError(t, err)
	require.Len(t, histories, 2)
	assert.Equal(t, alert.HistoryActionResolved, histories[1].Action())
	assert.Equal(t, SystemActor, histories[1].ActionByName())
}

func TestMissingSpotCheckRule_LeavesEarlierDayAlertOpen(t *testing.T) {
	repo := &fakeAlertRepo{}
	stale := alert.ReconstructAlert(1, 1, alert.TypeMissingSpotCheck, alert.SeverityWarning,
		"Ratio spot-checks incomplete", "Only 0 of 2 ratio spot-checks have been logged today.",
		"/ratio-checks", nil, nil, false, nil, nil, false, nil,
		daysFromNow(-1), daysFromNow(-1))
	repo.nextID = 1
	repo.alerts = append(repo.alerts, stale)

	rule := NewMissingSpotCheckRule(checkCountRepo(2), noopLogger())
	created, err := rule.Evaluate(context.Background(), 1, repo)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.False(t, stale.IsResolved())
}

func TestMissingSpotCheckRule_QuietWhenQuotaMet(t *testing.T) {
	rule := NewMissingSpotCheckRule(checkCountRepo(3), noopLogger())
	repo := &fakeAlertRepo{}

	created, err := rule.Evaluate(context.Background(), 1, repo)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Empty(t, repo.alerts)
}
