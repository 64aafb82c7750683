package get_salon

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// SalonsService fetches one active salon.
type SalonsService interface {
	GetPublic(ctx context.Context, id uuid.UUID) (*domain.Salon, error)
}

// CatalogService lists the active services of a salon.
type CatalogService interface {
	ListPublic(ctx context.Context, salonID uuid.UUID) ([]*domain.Service, error)
}

// StaffService lists the active staff of a salon.
type StaffService interface {
	ListPublic(ctx context.Context, salonID uuid.UUID) ([]*domain.StaffMember, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
