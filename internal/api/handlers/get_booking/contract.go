package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// BookingsService fetches one booking of the caller.
type BookingsService interface {
	GetMine(ctx context.Context, userID, bookingID uuid.UUID) (*domain.Booking, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
