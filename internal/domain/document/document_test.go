package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretrack/internal/shared/biztime"
)

func TestDocument_StatusDerivation(t *testing.T) {
	now := biztime.NowUTC()
	in60 := now.Add(60 * 24 * time.Hour)
	in10 := now.Add(10 * 24 * time.Hour)
	ago5 := now.Add(-5 * 24 * time.Hour)

	t.Run("no file means missing", func(t *testing.T) {
		d, err := NewDocument(1, "Fire Inspection", "inspection", nil, &in60, "")
		require.NoError(t, err)
		assert.Equal(t, StatusMissing, d.Status())
	})

	t.Run("no expiry means current", func(t *testing.T) {
		d, err := NewDocument(1, "Building Deed", "legal", nil, nil, "https://files.example.com/deed.pdf")
		require.NoError(t, err)
		assert.Equal(t, StatusCurrent, d.Status())
	})

	t.Run("far expiry means current", func(t *testing.T) {
		d, err := NewDocument(1, "License", "license", nil, &in60, "https://files.example.com/license.pdf")
		require.NoError(t, err)
		assert.Equal(t, StatusCurrent, d.Status())
	})

	t.Run("near expiry means expiring", func(t *testing.T) {
		d, err := NewDocument(1, "License", "license", nil, &in10, "https://files.example.com/license.pdf")
		require.NoError(t, err)
		assert.Equal(t, StatusExpiring, d.Status())
	})

	t.Run("past expiry means expired", func(t *testing.T) {
		d, err := NewDocument(1, "License", "license", nil, &ago5, "https://files.example.com/license.pdf")
		require.NoError(t, err)
		assert.Equal(t, StatusExpired, d.Status())
	})
}

func TestDocument_AttachFile(t *testing.T) {
	now := biztime.NowUTC()
	in90 := now.Add(90 * 24 * time.Hour)

	d, err := NewDocument(1, "Fire Inspection", "inspection", nil, nil, "")
	require.NoError(t, err)
	require.Equal(t, StatusMissing, d.Status())

	require.NoError(t, d.AttachFile("https://files.example.com/fire.pdf", &now, &in90))
	assert.Equal(t, StatusCurrent, d.Status())

	assert.Error(t, d.AttachFile("  ", nil, nil))
}

func TestDocument_RefreshStatus(t *testing.T) {
	now := biztime.NowUTC()
	in10 := now.Add(10 * 24 * time.Hour)

	d, err := NewDocument(1, "License", "license", nil, &in10, "https://files.example.com/license.pdf")
	require.NoError(t, err)
	require.Equal(t, StatusExpiring, d.Status())

	assert.False(t, d.RefreshStatus(now))

	changed := d.RefreshStatus(now.Add(11 * 24 * time.Hour))
	assert.True(t, changed)
	assert.Equal(t, StatusExpired, d.Status())
}
