package get_owner_salons

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// SalonsService lists the salons of one owner.
type SalonsService interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Salon, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
