package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openItems() []Item {
	return []Item{
		{Label: "Outlets covered", Done: false},
		{Label: "First aid kit stocked", Done: false},
	}
}

func TestNewChecklist(t *testing.T) {
	c, err := NewChecklist(1, 3, openItems())
	require.NoError(t, err)
	assert.False(t, c.IsComplete())
	assert.NotEmpty(t, c.ChecklistDate())

	_, err = NewChecklist(1, 3, nil)
	assert.Error(t, err)

	_, err = NewChecklist(1, 3, []Item{{Label: "  "}})
	assert.Error(t, err)

	_, err = NewChecklist(1, 0, openItems())
	assert.Error(t, err)
}

func TestChecklist_Complete(t *testing.T) {
	c, err := NewChecklist(1, 3, openItems())
	require.NoError(t, err)

	t.Run("incomplete items block completion", func(t *testing.T) {
		assert.Error(t, c.Complete("Dana Reyes"))
	})

	require.NoError(t, c.UpdateItems([]Item{
		{Label: "Outlets covered", Done: true},
		{Label: "First aid kit stocked", Done: true},
	}))

	t.Run("requires name", func(t *testing.T) {
		assert.Error(t, c.Complete(""))
	})

	require.NoError(t, c.Complete("Dana Reyes"))
	assert.True(t, c.IsComplete())
	assert.Equal(t, "Dana Reyes", c.CompletedBy())

	t.Run("completion is terminal", func(t *testing.T) {
		assert.Error(t, c.Complete("Miguel Santos"))
		assert.Error(t, c.UpdateItems(openItems()))
	})
}
