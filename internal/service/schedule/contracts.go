package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// ScheduleRepository is the schedule storage interface.
type ScheduleRepository interface {
	ReplaceOpeningHours(ctx context.Context, staffID uuid.UUID, weekday int, hours []*domain.OpeningHour) ([]*domain.OpeningHour, error)
	ListOpeningHoursByStaffIDs(ctx context.Context, staffIDs []uuid.UUID) ([]*domain.OpeningHour, error)
	CreateBlock(ctx context.Context, b *domain.BlockedTime) (*domain.BlockedTime, error)
	GetBlockByID(ctx context.Context, id uuid.UUID) (*domain.BlockedTime, error)
	DeleteBlock(ctx context.Context, id uuid.UUID) error
	ListBlocksByStaffIDs(ctx context.Context, staffIDs []uuid.UUID) ([]*domain.BlockedTime, error)
}

// StaffRepository resolves staff membership.
type StaffRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffMember, error)
}

// SalonRepository resolves salon ownership.
type SalonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error)
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
