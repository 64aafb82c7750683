package get_availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// SalonRepository loads the salon whose availability is requested.
type SalonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error)
}

// CatalogRepository loads the service and its staff eligibility links.
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	ListEligibleStaffIDs(ctx context.Context, serviceID uuid.UUID) ([]uuid.UUID, error)
}

// StaffRepository loads the staff members behind the eligibility links.
type StaffRepository interface {
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.StaffMember, error)
}

// ScheduleRepository loads opening hours and blocked times.
type ScheduleRepository interface {
	ListOpeningHours(ctx context.Context, staffIDs []uuid.UUID, weekday int) ([]*domain.OpeningHour, error)
	ListBlocksOverlapping(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*domain.BlockedTime, error)
}

// BookingRepository loads the bookings that occupy staff time.
type BookingRepository interface {
	ListActiveOverlapping(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*domain.Booking, error)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
