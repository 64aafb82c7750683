package get_user_bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// BookingsService lists the caller's bookings.
type BookingsService interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
