package admin_stats

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/service/stats"
)

// StatsService computes the platform numbers.
type StatsService interface {
	GetPlatformStats(ctx context.Context, adminID uuid.UUID) (*stats.PlatformStats, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
