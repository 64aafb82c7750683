package create_booking

import (
	"context"

	createBooking "github.com/salonplein/booking-platform/internal/usecase/create_booking"
)

// CreateBookingUseCase books one staff member for one service.
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
