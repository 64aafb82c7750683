package search_salons

import (
	"context"

	"github.com/salonplein/booking-platform/internal/domain"
)

// SalonsService searches the active salons.
type SalonsService interface {
	Search(ctx context.Context, city *string) ([]*domain.Salon, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
