package get_salon_bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// BookingsService lists the bookings of a salon for its owner.
type BookingsService interface {
	ListForSalon(ctx context.Context, ownerID, salonID uuid.UUID) ([]*domain.Booking, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
