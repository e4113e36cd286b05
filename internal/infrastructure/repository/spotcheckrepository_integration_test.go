package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretrack/internal/domain/room"
	"caretrack/internal/domain/spotcheck"
	"caretrack/internal/shared/biztime"
)

func logCheck(t *testing.T, repo spotcheck.Repository, facilityID uint, ratio string, staffCount, childrenCount int) *spotcheck.SpotCheck {
	t.Helper()

	parsed, err := room.ParseRatio(ratio)
	require.NoError(t, err)

	check, err := spotcheck.NewSpotCheck(facilityID, nil, "Toddler A", parsed,
		staffCount, childrenCount, spotcheck.CheckMethodInPerson, "", "Dana", "")
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), check))
	return check
}

func TestSpotCheckRepository_CreateAndListByDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpotCheckRepository(db)
	ctx := context.Background()

	compliant := logCheck(t, repo, 1, "1:6", 2, 11)
	violation := logCheck(t, repo, 1, "1:6", 1, 10)
	logCheck(t, repo, 2, "1:4", 1, 4) // another facility

	assert.NotZero(t, compliant.ID())
	assert.True(t, compliant.IsCompliant())
	assert.False(t, violation.IsCompliant())

	today := biztime.DateString(biztime.NowUTC())
	checks, err := repo.ListByFacilityAndDate(ctx, 1, today)
	require.NoError(t, err)
	require.Len(t, checks, 2)
	for _, c := range checks {
		assert.Equal(t, uint(1), c.FacilityID())
		assert.Equal(t, "1:6", c.RequiredRatio().String())
	}

	count, err := repo.CountByFacilityAndDate(ctx, 1, today)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestSpotCheckRepository_DailySummaries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpotCheckRepository(db)
	ctx := context.Background()

	logCheck(t, repo, 1, "1:6", 2, 11)
	logCheck(t, repo, 1, "1:6", 1, 10)

	today := biztime.DateString(biztime.NowUTC())
	summaries, err := repo.DailySummaries(ctx, 1, today, today)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, today, s.CheckDate)
	assert.Equal(t, 2, s.TotalChecks)
	assert.Equal(t, 1, s.CompliantChecks)
	assert.Equal(t, 1, s.Violations)
}

func TestSpotCheckRepository_DailySummariesEmptyRange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpotCheckRepository(db)

	summaries, err := repo.DailySummaries(context.Background(), 1, "2020-01-01", "2020-01-07")
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
