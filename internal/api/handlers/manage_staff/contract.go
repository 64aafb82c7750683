package manage_staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// StaffService manages the staff roster of a salon.
type StaffService interface {
	Create(ctx context.Context, ownerID, salonID uuid.UUID, name string) (*domain.StaffMember, error)
	ListForSalon(ctx context.Context, ownerID, salonID uuid.UUID) ([]*domain.StaffMember, error)
	Update(ctx context.Context, ownerID, staffID uuid.UUID, name *string, isActive *bool) (*domain.StaffMember, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
