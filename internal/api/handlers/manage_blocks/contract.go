package manage_blocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// ScheduleService manages the blocked times of a staff member.
type ScheduleService interface {
	CreateBlock(ctx context.Context, ownerID, staffID uuid.UUID, startAt, endAt time.Time, reason *string) (*domain.BlockedTime, error)
	ListBlocks(ctx context.Context, ownerID, staffID uuid.UUID) ([]*domain.BlockedTime, error)
	DeleteBlock(ctx context.Context, ownerID, blockID uuid.UUID) error
}

// Logger is the logging interface of the handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
