// Package bookings reads bookings and cancels them under the service's
// cancellation policy.
package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	bookingRepo "github.com/salonplein/booking-platform/internal/infra/storage/booking"
	salonRepo "github.com/salonplein/booking-platform/internal/infra/storage/salon"
)

// Service manages existing bookings.
type Service struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	salonRepo    SalonRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a bookings service.
func NewService(bookings BookingRepository, catalog CatalogRepository, salons SalonRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookings,
		catalogRepo:  catalog,
		salonRepo:    salons,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListMine fetches the caller's bookings, soonest first.
func (s *Service) ListMine(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ListMine: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
}

// ListForSalon fetches the bookings of the caller's salon.
func (s *Service) ListForSalon(ctx context.Context, ownerID, salonID uuid.UUID) ([]*domain.Booking, error) {
	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			return nil, ErrSalonNotFound
		}
		s.logger.Error("ListForSalon: repository error for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListForSalon - repository error: %v", ErrInternal, err)
	}
	if salon.OwnerID != ownerID {
		s.logger.Warn("ListForSalon: user %s does not own salon %s", ownerID, salonID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.ListBySalonIDs(ctx, []uuid.UUID{salonID})
	if err != nil {
		s.logger.Error("ListForSalon: repository error for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListForSalon - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
}

// GetMine fetches one booking of the caller.
func (s *Service) GetMine(ctx context.Context, userID, bookingID uuid.UUID) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		s.logger.Warn("GetMine: booking %s does not belong to user %s", bookingID, userID)
		return nil, ErrAccessDenied
	}
	return booking, nil
}

// Cancel cancels the caller's booking. Only the booking's owner may cancel,
// only status booked is cancellable, and the service's cancellation notice
// period must still be respected relative to the booking start.
func (s *Service) Cancel(ctx context.Context, userID, bookingID uuid.UUID) (*domain.Booking, error) {
	s.logger.Info("Cancel: user=%s, booking=%s", userID, bookingID)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		s.logger.Warn("Cancel: booking %s does not belong to user %s", bookingID, userID)
		return nil, ErrAccessDenied
	}
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking %s is already cancelled", bookingID)
		return nil, ErrAlreadyCancelled
	}

	deadline, err := s.cancelDeadline(ctx, booking)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	if now.After(deadline) {
		s.logger.Warn("Cancel: deadline %s passed for booking %s", deadline, bookingID)
		return nil, ErrCancelDeadlinePassed
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled
	s.logger.Info("Cancel: cancelled booking %s", bookingID)
	return booking, nil
}

// cancelDeadline resolves the last instant the booking may still be
// cancelled. A missing service record falls back to the platform default
// notice period instead of blocking the cancellation.
func (s *Service) cancelDeadline(ctx context.Context, booking *domain.Booking) (time.Time, error) {
	hours := domain.DefaultCancelUntilHours

	svc, err := s.catalogRepo.GetServiceByID(ctx, booking.ServiceID)
	if err == nil {
		hours = svc.CancelDeadlineHours()
	} else {
		s.logger.Warn("cancelDeadline: failed to get service %s, using default notice: %v", booking.ServiceID, err)
	}

	return booking.StartAt.Add(-time.Duration(hours) * time.Hour), nil
}

func (s *Service) getBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getBooking: repository error for booking=%s: %v", id, err)
		return nil, fmt.Errorf("%w: getBooking - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}
