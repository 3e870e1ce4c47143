package domain

// Default schedule configuration: 09:00-21:00, 30-minute grid
const (
	DefaultOpenTick               Tick = 9 * 60
	DefaultCloseTick              Tick = 21 * 60
	DefaultSlotGranularityMinutes      = 30
)

// DefaultServiceDurationMinutes applies when a catalog entry carries no duration
const DefaultServiceDurationMinutes = 30

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
