package domain

import (
	"time"

	"github.com/google/uuid"
)

// SalonStatus represents the moderation state of a salon.
type SalonStatus string

const (
	SalonStatusPending  SalonStatus = "pending"
	SalonStatusActive   SalonStatus = "active"
	SalonStatusRejected SalonStatus = "rejected"
)

// ValidSalonStatus reports whether s is one of the known statuses.
func ValidSalonStatus(s SalonStatus) bool {
	switch s {
	case SalonStatusPending, SalonStatusActive, SalonStatusRejected:
		return true
	default:
		return false
	}
}

// Salon represents a beauty salon on the platform.
// New salons start as pending and become bookable once an administrator
// approves them.
type Salon struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	City        string
	Address     *string
	Postcode    *string
	Description *string
	Status      SalonStatus
	// Timezone is the IANA zone all of the salon's civil times (opening
	// hours, requested booking dates) are interpreted in.
	Timezone  string
	CreatedAt time.Time
}

// IsActive returns true if the salon has been approved and is bookable.
func (s *Salon) IsActive() bool {
	return s.Status == SalonStatusActive
}

// Location resolves the salon's timezone, falling back to the platform
// default when the column is empty.
func (s *Salon) Location() (*time.Location, error) {
	tz := s.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	return time.LoadLocation(tz)
}
