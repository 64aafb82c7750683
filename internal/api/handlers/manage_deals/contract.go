package manage_deals

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/internal/service/deals"
)

// DealsService manages the deals of a salon.
type DealsService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *deals.CreateRequest) (*domain.Deal, error)
	ListForSalon(ctx context.Context, ownerID, salonID uuid.UUID) ([]*domain.Deal, error)
	Deactivate(ctx context.Context, ownerID, dealID uuid.UUID) error
	Delete(ctx context.Context, ownerID, dealID uuid.UUID) error
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
