package manage_hours

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/internal/service/schedule"
)

// ScheduleService manages the weekly opening hours of a staff member.
type ScheduleService interface {
	SetOpeningHours(ctx context.Context, ownerID, staffID uuid.UUID, weekday int, intervals []schedule.HourInterval) ([]*domain.OpeningHour, error)
	ListOpeningHours(ctx context.Context, ownerID, staffID uuid.UUID) ([]*domain.OpeningHour, error)
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
