package deals

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// DealRepository is the deal storage interface.
type DealRepository interface {
	Create(ctx context.Context, d *domain.Deal) (*domain.Deal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error)
	ListBySalonIDs(ctx context.Context, salonIDs []uuid.UUID) ([]*domain.Deal, error)
	ListActivePublic(ctx context.Context, now time.Time) ([]*domain.Deal, error)
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatalogRepository resolves the service a deal discounts.
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	IsStaffEligible(ctx context.Context, serviceID, staffID uuid.UUID) (bool, error)
}

// StaffRepository resolves the staff member a deal is pinned to.
type StaffRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffMember, error)
}

// SalonRepository resolves salon ownership.
type SalonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface of the service.
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
