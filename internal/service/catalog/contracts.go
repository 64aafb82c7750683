package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	catalogRepo "github.com/salonplein/booking-platform/internal/infra/storage/catalog"
)

// CatalogRepository is the service-catalog storage interface.
type CatalogRepository interface {
	CreateService(ctx context.Context, s *domain.Service) (*domain.Service, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	ListServicesBySalonIDs(ctx context.Context, salonIDs []uuid.UUID) ([]*domain.Service, error)
	UpdateService(ctx context.Context, id uuid.UUID, upd catalogRepo.ServiceUpdate) (*domain.Service, error)
	LinkStaff(ctx context.Context, serviceID, staffID uuid.UUID) error
	UnlinkStaff(ctx context.Context, serviceID, staffID uuid.UUID) error
	ListEligibleStaffIDs(ctx context.Context, serviceID uuid.UUID) ([]uuid.UUID, error)
}

// SalonRepository resolves salon ownership.
type SalonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error)
}

// StaffRepository verifies link targets.
type StaffRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffMember, error)
}

// Logger is the logging interface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
