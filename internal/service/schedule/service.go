// Package schedule manages the weekly opening hours and ad-hoc blocked times
// of staff members. All writes are owner-scoped.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	salonRepo "github.com/salonplein/booking-platform/internal/infra/storage/salon"
	scheduleRepo "github.com/salonplein/booking-platform/internal/infra/storage/schedule"
	staffRepo "github.com/salonplein/booking-platform/internal/infra/storage/staff"
	"github.com/salonplein/booking-platform/pkg/types"
)

// Service manages staff schedules.
type Service struct {
	scheduleRepo ScheduleRepository
	staffRepo    StaffRepository
	salonRepo    SalonRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService creates a schedule service.
func NewService(
	schedule ScheduleRepository,
	staff StaffRepository,
	salons SalonRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: schedule,
		staffRepo:    staff,
		salonRepo:    salons,
		txManager:    txManager,
		logger:       logger,
	}
}

// HourInterval is one "HH:MM"-"HH:MM" window.
type HourInterval struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// SetOpeningHours replaces all intervals of one (staff, weekday) pair. An
// empty interval list clears the weekday. Replacement runs in a transaction
// so availability queries never observe a half-replaced schedule.
func (s *Service) SetOpeningHours(ctx context.Context, ownerID, staffID uuid.UUID, weekday int, intervals []HourInterval) ([]*domain.OpeningHour, error) {
	s.logger.Info("SetOpeningHours: owner=%s, staff=%s, weekday=%d, intervals=%d",
		ownerID, staffID, weekday, len(intervals))

	if !domain.ValidWeekday(weekday) {
		return nil, fmt.Errorf("%w: weekday must be 0 (Sunday) through 6 (Saturday)", ErrInvalidInput)
	}
	if err := validateIntervals(intervals); err != nil {
		return nil, err
	}
	if _, err := s.ownedStaff(ctx, ownerID, staffID); err != nil {
		return nil, err
	}

	hours := make([]*domain.OpeningHour, 0, len(intervals))
	for _, in := range intervals {
		hours = append(hours, &domain.OpeningHour{
			StaffID:   staffID,
			Weekday:   weekday,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
		})
	}

	var replaced []*domain.OpeningHour
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		out, err := s.scheduleRepo.ReplaceOpeningHours(txCtx, staffID, weekday, hours)
		if err != nil {
			return fmt.Errorf("%w: SetOpeningHours - repository error: %v", ErrInternal, err)
		}
		replaced = out
		return nil
	})
	if err != nil {
		s.logger.Error("SetOpeningHours: %v", err)
		return nil, err
	}

	return replaced, nil
}

// ListOpeningHours fetches the full weekly schedule of a staff member.
func (s *Service) ListOpeningHours(ctx context.Context, ownerID, staffID uuid.UUID) ([]*domain.OpeningHour, error) {
	if _, err := s.ownedStaff(ctx, ownerID, staffID); err != nil {
		return nil, err
	}

	hours, err := s.scheduleRepo.ListOpeningHoursByStaffIDs(ctx, []uuid.UUID{staffID})
	if err != nil {
		s.logger.Error("ListOpeningHours: repository error for staff=%s: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListOpeningHours - repository error: %v", ErrInternal, err)
	}
	return hours, nil
}

// CreateBlock adds a blocked time for a staff member. Existing bookings in
// the window stay untouched; the block only suppresses new slots.
func (s *Service) CreateBlock(ctx context.Context, ownerID, staffID uuid.UUID, startAt, endAt time.Time, reason *string) (*domain.BlockedTime, error) {
	s.logger.Info("CreateBlock: owner=%s, staff=%s, start=%s, end=%s", ownerID, staffID, startAt, endAt)

	if startAt.IsZero() || endAt.IsZero() {
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if !startAt.Before(endAt) {
		return nil, fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}
	if reason != nil && len(*reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}
	if _, err := s.ownedStaff(ctx, ownerID, staffID); err != nil {
		return nil, err
	}

	block := &domain.BlockedTime{
		StaffID: staffID,
		StartAt: startAt,
		EndAt:   endAt,
		Reason:  reason,
	}

	created, err := s.scheduleRepo.CreateBlock(ctx, block)
	if err != nil {
		s.logger.Error("CreateBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}
	return created, nil
}

// DeleteBlock removes a blocked time of the caller's staff.
func (s *Service) DeleteBlock(ctx context.Context, ownerID, blockID uuid.UUID) error {
	s.logger.Info("DeleteBlock: owner=%s, block=%s", ownerID, blockID)

	block, err := s.scheduleRepo.GetBlockByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockNotFound) {
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for block=%s: %v", blockID, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}
	if _, err := s.ownedStaff(ctx, ownerID, block.StaffID); err != nil {
		return err
	}

	if err := s.scheduleRepo.DeleteBlock(ctx, blockID); err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockNotFound) {
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for block=%s: %v", blockID, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}
	return nil
}

// ListBlocks fetches the blocked times of a staff member.
func (s *Service) ListBlocks(ctx context.Context, ownerID, staffID uuid.UUID) ([]*domain.BlockedTime, error) {
	if _, err := s.ownedStaff(ctx, ownerID, staffID); err != nil {
		return nil, err
	}

	blocks, err := s.scheduleRepo.ListBlocksByStaffIDs(ctx, []uuid.UUID{staffID})
	if err != nil {
		s.logger.Error("ListBlocks: repository error for staff=%s: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %v", ErrInternal, err)
	}
	return blocks, nil
}

// ownedStaff loads the staff member and verifies the caller owns their salon.
func (s *Service) ownedStaff(ctx context.Context, ownerID, staffID uuid.UUID) (*domain.StaffMember, error) {
	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("ownedStaff: repository error for staff=%s: %v", staffID, err)
		return nil, fmt.Errorf("%w: ownedStaff - repository error: %v", ErrInternal, err)
	}

	salon, err := s.salonRepo.GetByID(ctx, member.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("ownedStaff: repository error for salon=%s: %v", member.SalonID, err)
		return nil, fmt.Errorf("%w: ownedStaff - repository error: %v", ErrInternal, err)
	}
	if salon.OwnerID != ownerID {
		s.logger.Warn("ownedStaff: user %s does not own salon %s", ownerID, member.SalonID)
		return nil, ErrAccessDenied
	}

	return member, nil
}

func validateIntervals(intervals []HourInterval) error {
	for i, in := range intervals {
		if err := in.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: interval %d: invalid start time", ErrInvalidInput, i)
		}
		if err := in.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: interval %d: invalid end time", ErrInvalidInput, i)
		}
		if !in.StartTime.IsBefore(in.EndTime) {
			return fmt.Errorf("%w: interval %d: start must be before end", ErrInvalidInput, i)
		}
	}
	return nil
}
