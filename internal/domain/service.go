package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service represents a bookable offering of a salon.
type Service struct {
	ID              uuid.UUID
	SalonID         uuid.UUID
	Name            string
	Category        *string
	DurationMinutes int
	// BufferMinutes is added after the service duration before the staff
	// member is considered free again (cleanup, preparation).
	BufferMinutes    int
	PriceCents       int64
	CancelUntilHours int
	IsActive         bool
	CreatedAt        time.Time
}

// EffectiveDurationMinutes is the full footprint a booking of this service
// occupies: duration plus buffer.
func (s *Service) EffectiveDurationMinutes() int {
	return s.DurationMinutes + s.BufferMinutes
}

// EffectiveDuration returns the footprint as a time.Duration.
func (s *Service) EffectiveDuration() time.Duration {
	return time.Duration(s.EffectiveDurationMinutes()) * time.Minute
}

// CancelDeadlineHours returns the cancellation notice period, falling back to
// the platform default when unset.
func (s *Service) CancelDeadlineHours() int {
	if s.CancelUntilHours <= 0 {
		return DefaultCancelUntilHours
	}
	return s.CancelUntilHours
}
