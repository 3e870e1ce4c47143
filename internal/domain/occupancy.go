package domain

// OccupiedTicks projects a day's appointments onto the slot grid for a
// stylist scope and returns the set of grid ticks that cannot start a new
// appointment chunk.
//
// For a specific stylist a tick is occupied when any of that stylist's
// appointments overlaps the tick's chunk. Appointments without an assigned
// stylist hold a seat in every stylist's calendar until assignment, so they
// block every scope.
//
// For the pooled "any stylist" scope a tick is occupied only when the number
// of busy appointments at that tick reaches the number of active stylists:
// as long as one chair is free, the salon can take the booking. A salon with
// no active stylists has no capacity at all.
func OccupiedTicks(hours OperatingHours, appointments []*Appointment, scope StylistScope, activeStylists int) OccupiedSlotSet {
	occupied := NewOccupiedSlotSet()

	for _, tick := range hours.Grid() {
		chunkEnd := tick.Add(hours.SlotGranularityMinutes)

		if scope.IsAny() {
			if activeStylists <= 0 {
				occupied.Add(tick)
				continue
			}

			busy := 0
			for _, appt := range appointments {
				if appt.Overlaps(tick, chunkEnd) {
					busy++
				}
			}
			if busy >= activeStylists {
				occupied.Add(tick)
			}
			continue
		}

		for _, appt := range appointments {
			if !appt.Overlaps(tick, chunkEnd) {
				continue
			}
			if appt.StylistID == nil || *appt.StylistID == scope.StylistID {
				occupied.Add(tick)
				break
			}
		}
	}

	return occupied
}
