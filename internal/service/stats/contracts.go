package stats

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	bookingRepo "github.com/salonplein/booking-platform/internal/infra/storage/booking"
)

// BookingRepository aggregates bookings.
type BookingRepository interface {
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
	RevenueByCategory(ctx context.Context) ([]bookingRepo.CategoryRevenue, error)
}

// SalonRepository counts salons per moderation status.
type SalonRepository interface {
	CountByStatus(ctx context.Context, status domain.SalonStatus) (int64, error)
}

// UserRepository counts users and resolves the caller's role.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// Logger is the logging interface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
