package get_availability

import (
	"context"

	getAvailability "github.com/salonplein/booking-platform/internal/usecase/get_availability"
)

// AvailabilityUseCase computes the bookable slots for one service on one day.
type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
