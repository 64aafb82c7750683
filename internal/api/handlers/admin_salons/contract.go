package admin_salons

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// SalonsService moderates the platform's salons.
type SalonsService interface {
	ListAll(ctx context.Context, adminID uuid.UUID) ([]*domain.Salon, error)
	Moderate(ctx context.Context, adminID, salonID uuid.UUID, status domain.SalonStatus) (*domain.Salon, error)
	Delete(ctx context.Context, adminID, salonID uuid.UUID) error
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
