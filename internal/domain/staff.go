package domain

import (
	"time"

	"github.com/google/uuid"
)

// StaffMember represents a bookable person working at a salon.
// Inactive staff never produce candidate slots and cannot take new bookings.
type StaffMember struct {
	ID        uuid.UUID
	SalonID   uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
}
