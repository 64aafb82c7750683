package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request asks to book one staff member for one service at one start instant.
type Request struct {
	UserID    uuid.UUID
	SalonID   uuid.UUID
	ServiceID uuid.UUID
	StaffID   uuid.UUID
	StartAt   time.Time
	// DealID optionally redeems a discounted slot.
	DealID *uuid.UUID
}

// Response is the created booking.
type Response struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	SalonID    uuid.UUID
	StaffID    uuid.UUID
	ServiceID  uuid.UUID
	StartAt    time.Time
	EndAt      time.Time
	PriceCents int64
	Status     string
	CreatedAt  time.Time
}
