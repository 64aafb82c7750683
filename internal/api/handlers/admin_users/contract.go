package admin_users

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// StatsService lists the platform users.
type StatsService interface {
	ListUsers(ctx context.Context, adminID uuid.UUID) ([]*domain.User, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
