package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking.
type BookingStatus string

const (
	StatusBooked    BookingStatus = "booked"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a confirmed or cancelled reservation.
// The occupied interval is half-open: [StartAt, EndAt), where EndAt was fixed
// at creation time as start + service duration + buffer.
type Booking struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	SalonID    uuid.UUID
	StaffID    uuid.UUID
	ServiceID  uuid.UUID
	StartAt    time.Time
	EndAt      time.Time
	PriceCents int64
	Status     BookingStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive returns true if the booking still occupies its time interval.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking is in a cancellable state.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusBooked
}

// Overlaps reports whether the booking intersects the half-open interval
// [start, end). Boundary touching is not an overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.EndAt) && end.After(b.StartAt)
}
