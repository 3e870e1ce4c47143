package domain

import "fmt"

// OperatingHours is the immutable salon schedule configuration.
// Malformed configuration is a startup error, never a runtime condition.
type OperatingHours struct {
	OpenTick               Tick
	CloseTick              Tick
	SlotGranularityMinutes int
}

// NewOperatingHours validates and builds the schedule configuration.
func NewOperatingHours(open, close Tick, granularityMinutes int) (OperatingHours, error) {
	h := OperatingHours{
		OpenTick:               open,
		CloseTick:              close,
		SlotGranularityMinutes: granularityMinutes,
	}
	if err := h.Validate(); err != nil {
		return OperatingHours{}, err
	}
	return h, nil
}

// Validate checks the schedule invariants: open before close, positive
// granularity and the working range divisible by the granularity.
func (h OperatingHours) Validate() error {
	if h.SlotGranularityMinutes <= 0 {
		return fmt.Errorf("operating hours: slot granularity must be positive, got %d", h.SlotGranularityMinutes)
	}
	if h.OpenTick >= h.CloseTick {
		return fmt.Errorf("operating hours: open tick %s must be before close tick %s", h.OpenTick, h.CloseTick)
	}
	if int(h.CloseTick-h.OpenTick)%h.SlotGranularityMinutes != 0 {
		return fmt.Errorf("operating hours: range %s-%s is not divisible by granularity %d",
			h.OpenTick, h.CloseTick, h.SlotGranularityMinutes)
	}
	return nil
}

// Grid returns every bookable start tick of a business day, from open to
// close minus one granularity step, in chronological order. The grid is
// derived purely from configuration and can be regenerated any number of
// times with identical results.
func (h OperatingHours) Grid() []Tick {
	count := int(h.CloseTick-h.OpenTick) / h.SlotGranularityMinutes
	grid := make([]Tick, 0, count)
	for t := h.OpenTick; t < h.CloseTick; t = t.Add(h.SlotGranularityMinutes) {
		grid = append(grid, t)
	}
	return grid
}

// Contains reports whether t is a valid grid tick: aligned to the
// granularity and within [open, close).
func (h OperatingHours) Contains(t Tick) bool {
	return t >= h.OpenTick && t < h.CloseTick && t.AlignedTo(h.SlotGranularityMinutes)
}

// ChunksNeeded converts a total duration in minutes to the number of
// granularity-sized chunks it occupies, rounding up. A zero or negative
// duration falls back to a single chunk.
func (h OperatingHours) ChunksNeeded(totalDurationMinutes int) int {
	if totalDurationMinutes <= 0 {
		return 1
	}
	g := h.SlotGranularityMinutes
	return (totalDurationMinutes + g - 1) / g
}

// BlockEnd returns the tick at which a block of the given duration,
// starting at start, releases the schedule (chunk-rounded).
func (h OperatingHours) BlockEnd(start Tick, totalDurationMinutes int) Tick {
	return start.Add(h.ChunksNeeded(totalDurationMinutes) * h.SlotGranularityMinutes)
}
