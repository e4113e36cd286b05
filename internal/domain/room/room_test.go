package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	ratio, err := ParseRatio("1:6")
	require.NoError(t, err)

	t.Run("creates active room", func(t *testing.T) {
		r, err := NewRoom(1, "Toddler A", AgeGroupToddler, ratio, 12)
		require.NoError(t, err)
		assert.Equal(t, uint(1), r.FacilityID())
		assert.Equal(t, "Toddler A", r.Name())
		assert.Equal(t, StatusActive, r.Status())
		assert.True(t, r.IsActive())
		assert.Equal(t, "1:6", r.RequiredRatio().String())
	})

	t.Run("defaults ratio from age group", func(t *testing.T) {
		r, err := NewRoom(1, "Infant Room", AgeGroupInfant, Ratio{}, 8)
		require.NoError(t, err)
		assert.Equal(t, "1:4", r.RequiredRatio().String())
	})

	t.Run("requires facility", func(t *testing.T) {
		_, err := NewRoom(0, "Toddler A", AgeGroupToddler, ratio, 12)
		assert.Error(t, err)
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := NewRoom(1, "", AgeGroupToddler, ratio, 12)
		assert.Error(t, err)
	})

	t.Run("rejects unknown age group", func(t *testing.T) {
		_, err := NewRoom(1, "Toddler A", AgeGroup("teen"), ratio, 12)
		assert.Error(t, err)
	})

	t.Run("rejects negative capacity", func(t *testing.T) {
		_, err := NewRoom(1, "Toddler A", AgeGroupToddler, ratio, -1)
		assert.Error(t, err)
	})
}

func TestRoom_Archive(t *testing.T) {
	r, err := NewRoom(1, "Toddler A", AgeGroupToddler, Ratio{}, 12)
	require.NoError(t, err)

	require.NoError(t, r.Archive())
	assert.Equal(t, StatusArchived, r.Status())
	assert.False(t, r.IsActive())

	assert.Error(t, r.Archive())
}

func TestRoom_UpdateDetails(t *testing.T) {
	r, err := NewRoom(1, "Toddler A", AgeGroupToddler, Ratio{}, 12)
	require.NoError(t, err)

	newRatio, err := ParseRatio("1:5")
	require.NoError(t, err)

	require.NoError(t, r.UpdateDetails("Toddler B", newRatio, 10))
	assert.Equal(t, "Toddler B", r.Name())
	assert.Equal(t, "1:5", r.RequiredRatio().String())
	assert.Equal(t, 10, r.Capacity())

	t.Run("zero ratio keeps current", func(t *testing.T) {
		require.NoError(t, r.UpdateDetails("Toddler B", Ratio{}, 10))
		assert.Equal(t, "1:5", r.RequiredRatio().String())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		assert.Error(t, r.UpdateDetails("", newRatio, 10))
	})
}
