package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/pkg/types"
)

// OpeningHour is one recurring weekly availability window for a staff member.
// Weekday follows the 0=Sunday..6=Saturday convention (matching
// time.Weekday). A staff member may have several windows on the same weekday
// (split shifts); each is an independent slot-generation window.
type OpeningHour struct {
	ID        uuid.UUID
	StaffID   uuid.UUID
	Weekday   int
	StartTime types.TimeString
	EndTime   types.TimeString
}

// ValidWeekday reports whether d is in the 0=Sunday..6=Saturday range.
func ValidWeekday(d int) bool {
	return d >= 0 && d <= 6
}

// BlockedTime is an explicit unavailability window for a staff member.
// The interval is half-open: [StartAt, EndAt).
type BlockedTime struct {
	ID      uuid.UUID
	StaffID uuid.UUID
	StartAt time.Time
	EndAt   time.Time
	Reason  *string
}

// Overlaps reports whether the block intersects the half-open interval
// [start, end). Boundary touching is not an overlap.
func (b *BlockedTime) Overlaps(start, end time.Time) bool {
	return start.Before(b.EndAt) && end.After(b.StartAt)
}
