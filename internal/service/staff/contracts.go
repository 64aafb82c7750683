package staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// StaffRepository is the staff storage interface.
type StaffRepository interface {
	Create(ctx context.Context, m *domain.StaffMember) (*domain.StaffMember, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffMember, error)
	ListBySalonIDs(ctx context.Context, salonIDs []uuid.UUID) ([]*domain.StaffMember, error)
	Update(ctx context.Context, id uuid.UUID, name *string, isActive *bool) (*domain.StaffMember, error)
}

// SalonRepository resolves salon ownership.
type SalonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error)
}

// Logger is the logging interface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
