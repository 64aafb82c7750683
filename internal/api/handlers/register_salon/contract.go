package register_salon

import (
	"context"

	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/internal/service/salons"
)

// SalonsService signs up new salons.
type SalonsService interface {
	Register(ctx context.Context, req *salons.RegisterRequest) (*domain.Salon, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
