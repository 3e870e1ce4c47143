package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stylistAppt(stylistID int64, start string, duration int, t *testing.T) *Appointment {
	t.Helper()
	return &Appointment{
		StylistID:       &stylistID,
		StartTick:       mustTick(t, start),
		DurationMinutes: duration,
		Status:          StatusBooked,
	}
}

func TestOccupiedTicks_SpecificStylist(t *testing.T) {
	hours := defaultHours(t)
	appointments := []*Appointment{
		stylistAppt(1, "10:00", 60, t),
		stylistAppt(2, "10:00", 60, t),
	}

	occupied := OccupiedTicks(hours, appointments, SpecificStylist(1), 2)

	assert.True(t, occupied.Contains(mustTick(t, "10:00")))
	assert.True(t, occupied.Contains(mustTick(t, "10:30")))
	assert.False(t, occupied.Contains(mustTick(t, "11:00")), "block ends at 11:00")
	assert.False(t, occupied.Contains(mustTick(t, "09:30")))
}

func TestOccupiedTicks_UnassignedBlocksEveryStylist(t *testing.T) {
	hours := defaultHours(t)
	appointments := []*Appointment{
		{StylistID: nil, StartTick: mustTick(t, "14:00"), DurationMinutes: 30, Status: StatusBooked},
	}

	for _, id := range []int64{1, 2, 7} {
		occupied := OccupiedTicks(hours, appointments, SpecificStylist(id), 3)
		assert.True(t, occupied.Contains(mustTick(t, "14:00")), "stylist %d", id)
	}
}

func TestOccupiedTicks_AnyStylist_OneChairFree(t *testing.T) {
	hours := defaultHours(t)
	appointments := []*Appointment{
		stylistAppt(1, "10:00", 30, t),
	}

	// Two active stylists, only one busy: the salon still has capacity.
	occupied := OccupiedTicks(hours, appointments, AnyStylist(), 2)
	assert.False(t, occupied.Contains(mustTick(t, "10:00")))

	appointments = append(appointments, stylistAppt(2, "10:00", 30, t))
	occupied = OccupiedTicks(hours, appointments, AnyStylist(), 2)
	assert.True(t, occupied.Contains(mustTick(t, "10:00")))
}

func TestOccupiedTicks_AnyStylist_NoActiveStylists(t *testing.T) {
	hours := defaultHours(t)

	occupied := OccupiedTicks(hours, nil, AnyStylist(), 0)

	for _, tick := range hours.Grid() {
		assert.True(t, occupied.Contains(tick), "tick %s", tick)
	}
}

func TestOccupiedTicks_AnyStylist_PartialOverlapCounts(t *testing.T) {
	hours := defaultHours(t)
	appointments := []*Appointment{
		stylistAppt(1, "10:00", 90, t), // 10:00-11:30
		stylistAppt(2, "11:00", 30, t), // 11:00-11:30
	}

	occupied := OccupiedTicks(hours, appointments, AnyStylist(), 2)

	assert.False(t, occupied.Contains(mustTick(t, "10:00")), "only one stylist busy")
	assert.True(t, occupied.Contains(mustTick(t, "11:00")), "both stylists busy")
	assert.False(t, occupied.Contains(mustTick(t, "11:30")))
}
