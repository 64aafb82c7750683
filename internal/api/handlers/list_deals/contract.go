package list_deals

import (
	"context"

	"github.com/salonplein/booking-platform/internal/domain"
)

// DealsService lists the redeemable deals.
type DealsService interface {
	ListPublic(ctx context.Context) ([]*domain.Deal, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
