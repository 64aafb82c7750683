package manage_services

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/internal/service/catalog"
)

// CatalogService manages the service catalog of a salon.
type CatalogService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *catalog.CreateRequest) (*domain.Service, error)
	ListForSalon(ctx context.Context, ownerID, salonID uuid.UUID) ([]*domain.Service, error)
	Update(ctx context.Context, ownerID, serviceID uuid.UUID, req *catalog.UpdateRequest) (*domain.Service, error)
	LinkStaff(ctx context.Context, ownerID, serviceID, staffID uuid.UUID) error
	UnlinkStaff(ctx context.Context, ownerID, serviceID, staffID uuid.UUID) error
	ListEligibleStaffIDs(ctx context.Context, ownerID, serviceID uuid.UUID) ([]uuid.UUID, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
