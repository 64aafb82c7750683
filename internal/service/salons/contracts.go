package salons

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	salonRepo "github.com/salonplein/booking-platform/internal/infra/storage/salon"
)

// SalonRepository is the salon storage interface.
type SalonRepository interface {
	Create(ctx context.Context, s *domain.Salon) (*domain.Salon, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Salon, error)
	Search(ctx context.Context, filter salonRepo.SearchFilter) ([]*domain.Salon, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SalonStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository is the user storage interface.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error
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
