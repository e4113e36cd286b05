package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlert(t *testing.T) {
	t.Run("valid alert starts open", func(t *testing.T) {
		a, err := NewAlert(1, TypeMissingSpotCheck, SeverityWarning, "Missing spot-checks", "Only 1 of 2 checks logged today")
		require.NoError(t, err)
		assert.False(t, a.IsAcknowledged())
		assert.False(t, a.IsResolved())
		assert.Equal(t, SeverityWarning, a.Severity())
	})

	t.Run("requires facility", func(t *testing.T) {
		_, err := NewAlert(0, TypeMissingSpotCheck, SeverityWarning, "t", "m")
		assert.Error(t, err)
	})

	t.Run("requires type", func(t *testing.T) {
		_, err := NewAlert(1, " ", SeverityWarning, "t", "m")
		assert.Error(t, err)
	})

	t.Run("rejects unknown severity", func(t *testing.T) {
		_, err := NewAlert(1, TypeMissingSpotCheck, Severity("severe"), "t", "m")
		assert.Error(t, err)
	})

	t.Run("requires title", func(t *testing.T) {
		_, err := NewAlert(1, TypeMissingSpotCheck, SeverityWarning, "", "m")
		assert.Error(t, err)
	})
}

func TestAlert_Acknowledge(t *testing.T) {
	a, err := NewAlert(1, TypeMissingDocuments, SeverityCritical, "Missing documents", "3 documents missing")
	require.NoError(t, err)

	require.NoError(t, a.Acknowledge("Dana Reyes"))
	assert.True(t, a.IsAcknowledged())
	require.NotNil(t, a.AcknowledgedByName())
	assert.Equal(t, "Dana Reyes", *a.AcknowledgedByName())

	t.Run("re-acknowledge updates caller", func(t *testing.T) {
		require.NoError(t, a.Acknowledge("Miguel Santos"))
		assert.True(t, a.IsAcknowledged())
		assert.False(t, a.IsResolved())
		assert.Equal(t, "Miguel Santos", *a.AcknowledgedByName())
	})

	t.Run("requires name", func(t *testing.T) {
		assert.Error(t, a.Acknowledge("  "))
	})

	t.Run("rejected after resolution", func(t *testing.T) {
		require.NoError(t, a.Resolve())
		assert.Error(t, a.Acknowledge("Dana Reyes"))
	})
}

func TestAlert_Resolve(t *testing.T) {
	a, err := NewAlert(1, TypeExpiredDocuments, SeverityCritical, "Expired documents", "2 documents expired")
	require.NoError(t, err)

	require.NoError(t, a.Resolve())
	assert.True(t, a.IsResolved())
	require.NotNil(t, a.ResolvedAt())

	t.Run("resolution is terminal", func(t *testing.T) {
		assert.Error(t, a.Resolve())
	})
}

func TestSeverity_Rank(t *testing.T) {
	assert.Equal(t, 1, SeverityCritical.Rank())
	assert.Equal(t, 2, SeverityWarning.Rank())
	assert.Equal(t, 3, SeverityInfo.Rank())
	assert.Equal(t, 4, Severity("unknown").Rank())
}
