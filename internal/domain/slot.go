package domain

import "sort"

// OccupiedSlotSet is a snapshot of the ticks already covered by occupying
// appointments for one (date, stylist scope) pair. It is always treated as
// possibly stale: the store re-validates at commit time.
type OccupiedSlotSet map[Tick]struct{}

// NewOccupiedSlotSet builds a set from the given ticks.
func NewOccupiedSlotSet(ticks ...Tick) OccupiedSlotSet {
	s := make(OccupiedSlotSet, len(ticks))
	for _, t := range ticks {
		s[t] = struct{}{}
	}
	return s
}

// Add marks a tick as occupied.
func (s OccupiedSlotSet) Add(t Tick) {
	s[t] = struct{}{}
}

// Contains reports whether the tick is occupied.
func (s OccupiedSlotSet) Contains(t Tick) bool {
	_, ok := s[t]
	return ok
}

// Ticks returns the occupied ticks in chronological order.
func (s OccupiedSlotSet) Ticks() []Tick {
	out := make([]Tick, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AvailableStarts filters the grid of hours down to the start ticks that can
// host a contiguous block of totalDurationMinutes. A start qualifies iff
// every chunk tick of the block is unoccupied and the block ends at or
// before closing time. Grid order is preserved; zero duration degrades to a
// single-chunk check. Pure: no I/O, no hidden state.
func AvailableStarts(hours OperatingHours, occupied OccupiedSlotSet, totalDurationMinutes int) []Tick {
	chunks := hours.ChunksNeeded(totalDurationMinutes)
	g := hours.SlotGranularityMinutes

	var starts []Tick
	for _, s := range hours.Grid() {
		if !startFits(s, chunks, g, hours.CloseTick, occupied) {
			continue
		}
		starts = append(starts, s)
	}
	return starts
}

// StartAvailable reports whether a single start tick can host a block of
// totalDurationMinutes against the occupied set.
func StartAvailable(hours OperatingHours, occupied OccupiedSlotSet, start Tick, totalDurationMinutes int) bool {
	return startFits(start, hours.ChunksNeeded(totalDurationMinutes), hours.SlotGranularityMinutes, hours.CloseTick, occupied)
}

func startFits(start Tick, chunks, granularity int, closeTick Tick, occupied OccupiedSlotSet) bool {
	// The block may not spill past closing even when every tick is free.
	if start.Add(chunks*granularity) > closeTick {
		return false
	}
	for i := 0; i < chunks; i++ {
		if occupied.Contains(start.Add(i * granularity)) {
			return false
		}
	}
	return true
}
