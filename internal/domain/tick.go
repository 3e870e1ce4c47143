package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Tick is a bookable time-of-day expressed as minutes from midnight,
// quantized to the slot granularity. On the wire a tick is an "HH:MM"
// string; in the database it is stored as a TIME column ("HH:MM:SS").
type Tick int

// ParseTick parses an "HH:MM" or "HH:MM:SS" string into a Tick.
func ParseTick(s string) (Tick, error) {
	var h, m int
	var sec int

	switch len(s) {
	case 5:
		if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
			return 0, fmt.Errorf("invalid time string %q: %v", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02d:%02d:%02d", &h, &m, &sec); err != nil {
			return 0, fmt.Errorf("invalid time string %q: %v", s, err)
		}
	default:
		return 0, fmt.Errorf("invalid time string %q: expected HH:MM or HH:MM:SS", s)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time string %q: out of range", s)
	}

	return Tick(h*60 + m), nil
}

// TickFromTime converts a wall-clock time to the tick of its time of day.
// The result is not rounded to any granularity.
func TickFromTime(t time.Time) Tick {
	return Tick(t.Hour()*60 + t.Minute())
}

// Clock returns the hour and minute components of the tick.
func (t Tick) Clock() (hour, minute int) {
	return int(t) / 60, int(t) % 60
}

// Add returns the tick shifted forward by the given number of minutes.
func (t Tick) Add(minutes int) Tick {
	return t + Tick(minutes)
}

// AlignedTo reports whether the tick lies on the grid of the given granularity.
func (t Tick) AlignedTo(granularityMinutes int) bool {
	return granularityMinutes > 0 && int(t)%granularityMinutes == 0
}

// String formats the tick as "HH:MM".
func (t Tick) String() string {
	h, m := t.Clock()
	return fmt.Sprintf("%02d:%02d", h, m)
}

// MarshalJSON encodes the tick as an "HH:MM" string.
func (t Tick) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an "HH:MM" or "HH:MM:SS" string.
func (t *Tick) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTick(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer, storing the tick as "HH:MM:SS".
func (t Tick) Value() (driver.Value, error) {
	h, m := t.Clock()
	return fmt.Sprintf("%02d:%02d:00", h, m), nil
}

// Scan implements sql.Scanner for TIME columns.
func (t *Tick) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = TickFromTime(v)
		return nil
	case []byte:
		parsed, err := ParseTick(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseTick(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Tick", src)
	}
}
