package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// SalonRepository loads the salon being booked.
type SalonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error)
}

// CatalogRepository loads the service and checks staff eligibility.
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	IsStaffEligible(ctx context.Context, serviceID, staffID uuid.UUID) (bool, error)
}

// StaffRepository loads the requested staff member.
type StaffRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffMember, error)
}

// BookingRepository reads and writes bookings. ListActiveOverlapping locks
// the returned rows when called inside a transaction.
type BookingRepository interface {
	ListActiveOverlapping(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// DealRepository reads and retires deals. GetByID locks the row when called
// inside a transaction so a deal is redeemed at most once.
type DealRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error)
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) error
}

// UserRepository ensures the booking customer has a platform profile.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
