package spotcheck

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretrack/internal/domain/room"
)

func mustRatio(t *testing.T, s string) room.Ratio {
	t.Helper()
	r, err := room.ParseRatio(s)
	require.NoError(t, err)
	return r
}

func TestNewSpotCheck(t *testing.T) {
	ratio := mustRatio(t, "1:6")
	roomID := uint(3)

	t.Run("compliant observation", func(t *testing.T) {
		sc, err := NewSpotCheck(1, &roomID, "Toddler A", ratio, 2, 11, CheckMethodInPerson, "", "Dana Reyes", "")
		require.NoError(t, err)
		assert.True(t, sc.IsCompliant())
		assert.Equal(t, "Toddler A", sc.RoomName())
		assert.Equal(t, "1:6", sc.RequiredRatio().String())
		assert.NotEmpty(t, sc.CheckDate())
		assert.NotEmpty(t, sc.CheckTime())
	})

	t.Run("violation observation", func(t *testing.T) {
		sc, err := NewSpotCheck(1, &roomID, "Toddler A", ratio, 1, 10, CheckMethodInPerson, "", "Dana Reyes", "")
		require.NoError(t, err)
		assert.False(t, sc.IsCompliant())
	})

	t.Run("zero staff never compliant", func(t *testing.T) {
		sc, err := NewSpotCheck(1, nil, "Toddler A", ratio, 0, 0, CheckMethodCCTV, "", "Dana Reyes", "")
		require.NoError(t, err)
		assert.False(t, sc.IsCompliant())
	})

	t.Run("requires room name", func(t *testing.T) {
		_, err := NewSpotCheck(1, nil, "  ", ratio, 1, 4, CheckMethodInPerson, "", "Dana Reyes", "")
		assert.Error(t, err)
	})

	t.Run("requires checked by name", func(t *testing.T) {
		_, err := NewSpotCheck(1, nil, "Toddler A", ratio, 1, 4, CheckMethodInPerson, "", "", "")
		assert.Error(t, err)
	})

	t.Run("rejects negative counts", func(t *testing.T) {
		_, err := NewSpotCheck(1, nil, "Toddler A", ratio, -1, 4, CheckMethodInPerson, "", "Dana Reyes", "")
		assert.Error(t, err)

		_, err = NewSpotCheck(1, nil, "Toddler A", ratio, 1, -4, CheckMethodInPerson, "", "Dana Reyes", "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		_, err := NewSpotCheck(1, nil, "Toddler A", ratio, 1, 4, CheckMethod("walkthrough"), "", "Dana Reyes", "")
		assert.Error(t, err)
	})

	t.Run("other method requires description", func(t *testing.T) {
		_, err := NewSpotCheck(1, nil, "Toddler A", ratio, 1, 4, CheckMethodOther, "  ", "Dana Reyes", "")
		assert.Error(t, err)
	})

	t.Run("other description truncated", func(t *testing.T) {
		long := strings.Repeat("x", 300)
		sc, err := NewSpotCheck(1, nil, "Toddler A", ratio, 1, 4, CheckMethodOther, long, "Dana Reyes", "")
		require.NoError(t, err)
		assert.Len(t, sc.CheckMethodOther(), 200)
	})

	t.Run("other description truncated on a rune boundary", func(t *testing.T) {
		long := strings.Repeat("é", 300)
		sc, err := NewSpotCheck(1, nil, "Toddler A", ratio, 1, 4, CheckMethodOther, long, "Dana Reyes", "")
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(sc.CheckMethodOther()))
		assert.Equal(t, 200, utf8.RuneCountInString(sc.CheckMethodOther()))
	})

	t.Run("non-other method clears description", func(t *testing.T) {
		sc, err := NewSpotCheck(1, nil, "Toddler A", ratio, 1, 4, CheckMethodInPerson, "ignored", "Dana Reyes", "")
		require.NoError(t, err)
		assert.Empty(t, sc.CheckMethodOther())
	})
}

func TestCheckMethod_IsValid(t *testing.T) {
	assert.True(t, CheckMethodInPerson.IsValid())
	assert.True(t, CheckMethodCCTV.IsValid())
	assert.True(t, CheckMethodOther.IsValid())
	assert.False(t, CheckMethod("drone").IsValid())
	assert.False(t, CheckMethod("").IsValid())
}
