package converter

import (
	"testing"
	"time"

	"prescripto-patient-client/internal/domain/entity"
	"prescripto-patient-client/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridToViews(t *testing.T) {
	// Saturday June 15 2024
	now := time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)
	grid := schedule.BuildGrid(entity.BookedSlotMap{}, now)

	views := GridToViews(grid)

	require.Len(t, views, 7)
	assert.Equal(t, 0, views[0].Index)
	assert.Equal(t, "SAT", views[0].Weekday)
	assert.Equal(t, 15, views[0].DayOfMonth)
	assert.Equal(t, "SUN", views[1].Weekday)
	assert.Equal(t, 16, views[1].DayOfMonth)

	require.NotEmpty(t, views[0].Slots)
	assert.Equal(t, "10:00 AM", views[0].Slots[0].Value)
	assert.Equal(t, "10:00 am", views[0].Slots[0].Display)
}

func TestGridToViews_Empty(t *testing.T) {
	assert.Empty(t, GridToViews(nil))
}
