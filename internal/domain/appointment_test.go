package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to AppointmentStatus
		allowed  bool
	}{
		{StatusBooked, StatusConfirmed, true},
		{StatusBooked, StatusRejected, true},
		{StatusBooked, StatusInProgress, false},
		{StatusBooked, StatusCompleted, false},
		{StatusConfirmed, StatusInProgress, true},
		{StatusConfirmed, StatusCancelledByAdmin, true},
		{StatusConfirmed, StatusRejected, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelledByAdmin, true},
		{StatusInProgress, StatusConfirmed, false},
		{StatusCompleted, StatusBooked, false},
		{StatusRejected, StatusConfirmed, false},
		{StatusCancelledByAdmin, StatusRefunded, false},
		{StatusRefunded, StatusBooked, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []AppointmentStatus{
		StatusCompleted, StatusRejected, StatusCancelled, StatusCancelledByAdmin, StatusRefunded,
	} {
		assert.True(t, s.IsTerminal(), "%s must be terminal", s)
	}

	for _, s := range []AppointmentStatus{StatusBooked, StatusConfirmed, StatusInProgress} {
		assert.False(t, s.IsTerminal(), "%s must not be terminal", s)
	}

	assert.False(t, AppointmentStatus("UNKNOWN").IsTerminal(), "unknown status is not a valid terminal")
}

func TestAppointmentOccupiesSlot(t *testing.T) {
	a := &Appointment{Status: StatusBooked}
	assert.True(t, a.OccupiesSlot())

	a.Status = StatusConfirmed
	assert.True(t, a.OccupiesSlot())

	a.Status = StatusInProgress
	assert.True(t, a.OccupiesSlot())

	for _, s := range []AppointmentStatus{
		StatusCompleted, StatusRejected, StatusCancelled, StatusCancelledByAdmin, StatusRefunded,
	} {
		a.Status = s
		assert.False(t, a.OccupiesSlot(), "%s must free its slots", s)
	}
}

func TestAppointmentOverlaps(t *testing.T) {
	a := &Appointment{StartTick: 690, DurationMinutes: 30} // 11:30-12:00

	assert.True(t, a.Overlaps(680, 710), "booking 11:20-11:50 intersects")
	assert.False(t, a.Overlaps(660, 690), "interval ending at the start only touches")
	assert.False(t, a.Overlaps(720, 750), "interval starting at the end only touches")
	assert.True(t, a.Overlaps(600, 900))
}

func TestParseTick(t *testing.T) {
	tick, err := ParseTick("09:30")
	assert.NoError(t, err)
	assert.Equal(t, Tick(570), tick)

	tick, err = ParseTick("21:00:00")
	assert.NoError(t, err)
	assert.Equal(t, Tick(1260), tick)

	for _, bad := range []string{"", "9:30", "24:00", "12:61", "noon", "12-30"} {
		_, err := ParseTick(bad)
		assert.Error(t, err, "%q must not parse", bad)
	}
}

func TestTickString(t *testing.T) {
	assert.Equal(t, "09:00", Tick(540).String())
	assert.Equal(t, "20:30", Tick(1230).String())
	assert.Equal(t, "00:00", Tick(0).String())
}

func TestServiceEffectiveDuration(t *testing.T) {
	s := &ServiceItem{DurationMinutes: 45}
	assert.Equal(t, 45, s.EffectiveDuration())

	s.DurationMinutes = 0
	assert.Equal(t, DefaultServiceDurationMinutes, s.EffectiveDuration())
}
