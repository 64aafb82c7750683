// Package stats computes the platform-wide numbers for the admin dashboard.
package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	bookingRepo "github.com/salonplein/booking-platform/internal/infra/storage/booking"
	userRepo "github.com/salonplein/booking-platform/internal/infra/storage/user"
)

// Service computes admin statistics.
type Service struct {
	bookingRepo BookingRepository
	salonRepo   SalonRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService creates a stats service.
func NewService(bookings BookingRepository, salons SalonRepository, users UserRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookings,
		salonRepo:   salons,
		userRepo:    users,
		logger:      logger,
	}
}

// PlatformStats is the admin dashboard snapshot.
type PlatformStats struct {
	Users             int64
	SalonsPending     int64
	SalonsActive      int64
	SalonsRejected    int64
	BookingsTotal     int64
	BookingsCancelled int64
	RevenueByCategory []bookingRepo.CategoryRevenue
}

// GetPlatformStats aggregates the platform numbers. Administrators only.
func (s *Service) GetPlatformStats(ctx context.Context, adminID uuid.UUID) (*PlatformStats, error) {
	s.logger.Info("GetPlatformStats: admin=%s", adminID)

	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	var stats PlatformStats
	var err error

	if stats.Users, err = s.userRepo.Count(ctx); err != nil {
		s.logger.Error("GetPlatformStats: count users: %v", err)
		return nil, fmt.Errorf("%w: GetPlatformStats - count users: %v", ErrInternal, err)
	}
	if stats.SalonsPending, err = s.salonRepo.CountByStatus(ctx, domain.SalonStatusPending); err != nil {
		s.logger.Error("GetPlatformStats: count pending salons: %v", err)
		return nil, fmt.Errorf("%w: GetPlatformStats - count pending salons: %v", ErrInternal, err)
	}
	if stats.SalonsActive, err = s.salonRepo.CountByStatus(ctx, domain.SalonStatusActive); err != nil {
		s.logger.Error("GetPlatformStats: count active salons: %v", err)
		return nil, fmt.Errorf("%w: GetPlatformStats - count active salons: %v", ErrInternal, err)
	}
	if stats.SalonsRejected, err = s.salonRepo.CountByStatus(ctx, domain.SalonStatusRejected); err != nil {
		s.logger.Error("GetPlatformStats: count rejected salons: %v", err)
		return nil, fmt.Errorf("%w: GetPlatformStats - count rejected salons: %v", ErrInternal, err)
	}
	if stats.BookingsTotal, err = s.bookingRepo.CountAll(ctx); err != nil {
		s.logger.Error("GetPlatformStats: count bookings: %v", err)
		return nil, fmt.Errorf("%w: GetPlatformStats - count bookings: %v", ErrInternal, err)
	}
	if stats.BookingsCancelled, err = s.bookingRepo.CountByStatus(ctx, domain.StatusCancelled); err != nil {
		s.logger.Error("GetPlatformStats: count cancelled bookings: %v", err)
		return nil, fmt.Errorf("%w: GetPlatformStats - count cancelled bookings: %v", ErrInternal, err)
	}
	if stats.RevenueByCategory, err = s.bookingRepo.RevenueByCategory(ctx); err != nil {
		s.logger.Error("GetPlatformStats: revenue by category: %v", err)
		return nil, fmt.Errorf("%w: GetPlatformStats - revenue by category: %v", ErrInternal, err)
	}

	return &stats, nil
}

// ListUsers fetches every platform user. Administrators only.
func (s *Service) ListUsers(ctx context.Context, adminID uuid.UUID) ([]*domain.User, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListUsers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUsers - repository error: %v", ErrInternal, err)
	}
	return users, nil
}

func (s *Service) requireAdmin(ctx context.Context, userID uuid.UUID) error {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("requireAdmin: failed to get user %s: %v", userID, err)
		return fmt.Errorf("%w: requireAdmin - get user: %v", ErrInternal, err)
	}
	if !u.IsAdmin() {
		s.logger.Warn("requireAdmin: user %s is not an administrator", userID)
		return ErrAccessDenied
	}
	return nil
}
