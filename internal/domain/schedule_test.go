package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultHours(t *testing.T) OperatingHours {
	t.Helper()
	h, err := NewOperatingHours(DefaultOpenTick, DefaultCloseTick, DefaultSlotGranularityMinutes)
	require.NoError(t, err)
	return h
}

func TestNewOperatingHours_Validation(t *testing.T) {
	tests := []struct {
		name        string
		open, close Tick
		granularity int
		wantErr     bool
	}{
		{"valid default", 540, 1260, 30, false},
		{"open after close", 1260, 540, 30, true},
		{"open equals close", 540, 540, 30, true},
		{"zero granularity", 540, 1260, 0, true},
		{"negative granularity", 540, 1260, -30, true},
		{"range not divisible", 540, 1265, 30, true},
		{"hour grid", 540, 1260, 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOperatingHours(tt.open, tt.close, tt.granularity)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGrid_Deterministic(t *testing.T) {
	hours := defaultHours(t)

	first := hours.Grid()
	second := hours.Grid()

	assert.Equal(t, first, second)
	assert.Len(t, first, int(hours.CloseTick-hours.OpenTick)/hours.SlotGranularityMinutes)
	assert.Equal(t, Tick(540), first[0])
	assert.Equal(t, Tick(1230), first[len(first)-1]) // 20:30 is the last start
}

func TestGrid_Order(t *testing.T) {
	hours := defaultHours(t)

	grid := hours.Grid()
	for i := 1; i < len(grid); i++ {
		assert.Equal(t, grid[i-1].Add(hours.SlotGranularityMinutes), grid[i])
	}
}

func TestChunksNeeded(t *testing.T) {
	hours := defaultHours(t)

	assert.Equal(t, 1, hours.ChunksNeeded(0), "zero duration degrades to a single chunk")
	assert.Equal(t, 1, hours.ChunksNeeded(-15))
	assert.Equal(t, 1, hours.ChunksNeeded(30))
	assert.Equal(t, 2, hours.ChunksNeeded(31))
	assert.Equal(t, 2, hours.ChunksNeeded(45))
	assert.Equal(t, 2, hours.ChunksNeeded(60))
	assert.Equal(t, 3, hours.ChunksNeeded(90))
}

func TestContains(t *testing.T) {
	hours := defaultHours(t)

	assert.True(t, hours.Contains(540))
	assert.True(t, hours.Contains(1230))
	assert.False(t, hours.Contains(1260), "closing tick is not bookable")
	assert.False(t, hours.Contains(510), "before opening")
	assert.False(t, hours.Contains(545), "not aligned to the grid")
}
