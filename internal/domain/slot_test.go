package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTick(t *testing.T, s string) Tick {
	t.Helper()
	tick, err := ParseTick(s)
	require.NoError(t, err)
	return tick
}

func TestAvailableStarts_EmptyOccupied(t *testing.T) {
	hours := defaultHours(t)

	starts := AvailableStarts(hours, NewOccupiedSlotSet(), 30)

	assert.Equal(t, hours.Grid(), starts, "single-chunk duration on an empty day yields the full grid")
}

func TestAvailableStarts_BoundaryExclusion(t *testing.T) {
	hours := defaultHours(t)

	// 90 minutes = 3 chunks: 20:30 would end at 22:00, past 21:00 close,
	// even though 20:30 itself is free.
	starts := AvailableStarts(hours, NewOccupiedSlotSet(), 90)

	assert.NotContains(t, starts, mustTick(t, "20:30"))
	assert.NotContains(t, starts, mustTick(t, "20:00"))
	assert.Contains(t, starts, mustTick(t, "19:30"), "19:30+90m ends exactly at close")
}

func TestAvailableStarts_OverlapDetection(t *testing.T) {
	hours := defaultHours(t)
	occupied := NewOccupiedSlotSet(mustTick(t, "10:00"))

	// 60 minutes = 2 chunks: 09:30 collides on its second chunk.
	starts := AvailableStarts(hours, occupied, 60)

	assert.NotContains(t, starts, mustTick(t, "09:30"))
	assert.NotContains(t, starts, mustTick(t, "10:00"))
	assert.Contains(t, starts, mustTick(t, "09:00"))
	assert.Contains(t, starts, mustTick(t, "10:30"))
}

func TestAvailableStarts_DegenerateDuration(t *testing.T) {
	hours := defaultHours(t)
	occupied := NewOccupiedSlotSet(mustTick(t, "12:00"))

	starts := AvailableStarts(hours, occupied, 0)

	// Zero duration behaves as one chunk, not "always available".
	assert.NotContains(t, starts, mustTick(t, "12:00"))
	assert.Len(t, starts, len(hours.Grid())-1)
}

func TestAvailableStarts_Monotonicity(t *testing.T) {
	hours := defaultHours(t)
	occupied := NewOccupiedSlotSet()

	previous := AvailableStarts(hours, occupied, 60)

	for _, extra := range []string{"11:00", "15:30", "09:00"} {
		occupied.Add(mustTick(t, extra))
		current := AvailableStarts(hours, occupied, 60)

		assert.LessOrEqual(t, len(current), len(previous))
		for _, s := range current {
			assert.Contains(t, previous, s, "occupying a tick must never free a start")
		}
		previous = current
	}
}

func TestAvailableStarts_Idempotent(t *testing.T) {
	hours := defaultHours(t)
	occupied := NewOccupiedSlotSet(mustTick(t, "13:00"), mustTick(t, "13:30"))

	first := AvailableStarts(hours, occupied, 45)
	second := AvailableStarts(hours, occupied, 45)

	assert.Equal(t, first, second)
}

func TestAvailableStarts_PreservesGridOrder(t *testing.T) {
	hours := defaultHours(t)
	occupied := NewOccupiedSlotSet(mustTick(t, "09:30"), mustTick(t, "17:00"))

	starts := AvailableStarts(hours, occupied, 30)
	for i := 1; i < len(starts); i++ {
		assert.Less(t, starts[i-1], starts[i])
	}
}

func TestStartAvailable(t *testing.T) {
	hours := defaultHours(t)
	occupied := NewOccupiedSlotSet(mustTick(t, "10:00"))

	assert.True(t, StartAvailable(hours, occupied, mustTick(t, "09:00"), 60))
	assert.False(t, StartAvailable(hours, occupied, mustTick(t, "09:30"), 60))
	assert.False(t, StartAvailable(hours, occupied, mustTick(t, "20:30"), 90), "block past close")
}

func TestOccupiedSlotSet_Ticks(t *testing.T) {
	s := NewOccupiedSlotSet(mustTick(t, "15:00"), mustTick(t, "09:00"), mustTick(t, "12:30"))

	assert.Equal(t, []Tick{540, 750, 900}, s.Ticks())
}
