package get_availability

import (
	"time"

	"github.com/google/uuid"
)

// Request asks for the bookable slots of one service on one calendar date.
type Request struct {
	SalonID   uuid.UUID
	ServiceID uuid.UUID
	// Date is the calendar date to compute slots for; only the year, month
	// and day are used, interpreted in the salon's timezone.
	Date time.Time
	// StaffID optionally narrows the result to one staff member.
	StaffID *uuid.UUID
}

// Response carries the computed slots.
type Response struct {
	Date      time.Time
	SalonID   uuid.UUID
	ServiceID uuid.UUID
	// DurationMinutes is the bookable service duration shown to the
	// customer, without the buffer.
	DurationMinutes int
	Slots           []Slot
}

// Slot is one bookable start time for one staff member.
type Slot struct {
	StaffID   uuid.UUID
	StaffName string
	// StartAt is the absolute start instant in the salon's timezone.
	StartAt time.Time
}
