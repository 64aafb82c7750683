package domain

// SlotStepMinutes is the fixed grid step for candidate slot generation.
// Product policy: slots always start on a 15-minute boundary, independent of
// service duration.
const SlotStepMinutes = 15

// Default values applied when a salon or service leaves them unset.
const (
	DefaultCancelUntilHours = 24
	DefaultTimezone         = "Europe/Amsterdam"
)

// Business validation constants
const (
	MinServiceDurationMinutes = 10
	MaxServiceDurationMinutes = 600
	MinBufferMinutes          = 0
	MaxBufferMinutes          = 120
	MinCancelUntilHours       = 0
	MaxCancelUntilHours       = 168 // 1 week
	MaxReasonLength           = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
