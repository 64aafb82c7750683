package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// BookingRepository is the booking storage interface.
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error)
	ListBySalonIDs(ctx context.Context, salonIDs []uuid.UUID) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
}

// CatalogRepository resolves the cancellation policy of a booking's service.
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// SalonRepository resolves salon ownership.
type SalonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface of the service.
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
