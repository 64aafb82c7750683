// Package create_booking books a staff member for a service. The overlap
// decision is made inside a serializable transaction with the competing rows
// locked, so two customers can never hold the same interval; the bookings
// table's exclusion constraint backs this up at the storage level.
package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonplein/booking-platform/internal/domain"
	bookingRepo "github.com/salonplein/booking-platform/internal/infra/storage/booking"
	catalogRepo "github.com/salonplein/booking-platform/internal/infra/storage/catalog"
	dealRepo "github.com/salonplein/booking-platform/internal/infra/storage/deal"
	salonRepo "github.com/salonplein/booking-platform/internal/infra/storage/salon"
	staffRepo "github.com/salonplein/booking-platform/internal/infra/storage/staff"
	userRepo "github.com/salonplein/booking-platform/internal/infra/storage/user"
	"github.com/google/uuid"
)

// UseCase creates bookings.
type UseCase struct {
	salonRepo    SalonRepository
	catalogRepo  CatalogRepository
	staffRepo    StaffRepository
	bookingRepo  BookingRepository
	dealRepo     DealRepository
	userRepo     UserRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking use case.
func NewUseCase(
	salons SalonRepository,
	catalog CatalogRepository,
	staff StaffRepository,
	bookings BookingRepository,
	deals DealRepository,
	users UserRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		salonRepo:    salons,
		catalogRepo:  catalog,
		staffRepo:    staff,
		bookingRepo:  bookings,
		dealRepo:     deals,
		userRepo:     users,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute books the requested slot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, salon=%s, service=%s, staff=%s, start=%s",
		req.UserID, req.SalonID, req.ServiceID, req.StaffID, req.StartAt)

	// 1. Validate the request shape.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if !req.StartAt.After(now) {
		uc.logger.Warn("CreateBooking: start %s is not in the future", req.StartAt)
		return nil, ErrStartInPast
	}

	// 2. Load the salon; only approved salons take bookings.
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("CreateBooking: salon %s not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateBooking: failed to get salon %s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}
	if !salon.IsActive() {
		uc.logger.Warn("CreateBooking: salon %s is not active", req.SalonID)
		return nil, ErrSalonNotFound
	}

	// 3. Load the service; it must belong to the salon and be active.
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service %s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service %s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.SalonID != req.SalonID || !service.IsActive {
		uc.logger.Warn("CreateBooking: service %s not available at salon %s", req.ServiceID, req.SalonID)
		return nil, ErrServiceNotFound
	}
	if service.EffectiveDurationMinutes() <= 0 {
		uc.logger.Warn("CreateBooking: service %s has non-positive footprint", req.ServiceID)
		return nil, ErrInvalidService
	}

	// 4. Load the staff member; active, at this salon, eligible for the service.
	member, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateBooking: staff %s not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateBooking: failed to get staff %s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if member.SalonID != req.SalonID || !member.IsActive {
		uc.logger.Warn("CreateBooking: staff %s not available at salon %s", req.StaffID, req.SalonID)
		return nil, ErrStaffNotFound
	}

	eligible, err := uc.catalogRepo.IsStaffEligible(ctx, req.ServiceID, req.StaffID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check eligibility: %v", err)
		return nil, fmt.Errorf("%w: failed to check eligibility: %v", ErrInternal, err)
	}
	if !eligible {
		uc.logger.Warn("CreateBooking: staff %s not eligible for service %s", req.StaffID, req.ServiceID)
		return nil, ErrStaffNotEligible
	}

	startAt := req.StartAt
	endAt := startAt.Add(service.EffectiveDuration())

	var result *domain.Booking

	// 5. Decide and write inside one serializable transaction.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Resolve the price, redeeming the deal under a row lock.
		price := service.PriceCents
		if req.DealID != nil {
			dealPrice, err := uc.redeemDeal(txCtx, req, now)
			if err != nil {
				return err
			}
			price = dealPrice
		}

		// 5.2. Re-check the overlap with the competing rows locked. Boundary
		// touching is not a conflict.
		competing, err := uc.bookingRepo.ListActiveOverlapping(txCtx, []uuid.UUID{req.StaffID}, startAt, endAt)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}
		for _, b := range competing {
			if b.IsActive() && b.Overlaps(startAt, endAt) {
				uc.logger.Warn("CreateBooking: slot %s-%s already taken by booking %s", startAt, endAt, b.ID)
				return ErrSlotConflict
			}
		}

		// 5.3. Make sure the customer has a platform profile.
		if err := uc.ensureUser(txCtx, req.UserID); err != nil {
			return err
		}

		// 5.4. Insert the booking. The exclusion constraint catches anything
		// the re-check could not see.
		booking := &domain.Booking{
			UserID:     req.UserID,
			SalonID:    req.SalonID,
			StaffID:    req.StaffID,
			ServiceID:  req.ServiceID,
			StartAt:    startAt,
			EndAt:      endAt,
			PriceCents: price,
			Status:     domain.StatusBooked,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrOverlapConstraint) {
				uc.logger.Warn("CreateBooking: overlap constraint hit for staff %s at %s", req.StaffID, startAt)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking %s", result.ID)

	return &Response{
		ID:         result.ID,
		UserID:     result.UserID,
		SalonID:    result.SalonID,
		StaffID:    result.StaffID,
		ServiceID:  result.ServiceID,
		StartAt:    result.StartAt,
		EndAt:      result.EndAt,
		PriceCents: result.PriceCents,
		Status:     string(result.Status),
		CreatedAt:  result.CreatedAt,
	}, nil
}

// redeemDeal validates the deal under a row lock, deactivates it and returns
// the discounted price. Runs inside the booking transaction, so a failed
// booking leaves the deal untouched.
func (uc *UseCase) redeemDeal(ctx context.Context, req *Request, now time.Time) (int64, error) {
	deal, err := uc.dealRepo.GetByID(ctx, *req.DealID)
	if err != nil {
		if errors.Is(err, dealRepo.ErrDealNotFound) {
			uc.logger.Warn("CreateBooking: deal %s not found", *req.DealID)
			return 0, ErrInvalidDeal
		}
		uc.logger.Error("CreateBooking: failed to get deal %s: %v", *req.DealID, err)
		return 0, fmt.Errorf("%w: failed to get deal: %v", ErrInternal, err)
	}

	if !deal.IsRedeemable(now) {
		uc.logger.Warn("CreateBooking: deal %s expired or already redeemed", deal.ID)
		return 0, ErrInvalidDeal
	}
	if !deal.Matches(req.SalonID, req.ServiceID, req.StaffID, req.StartAt) {
		uc.logger.Warn("CreateBooking: deal %s does not match the requested slot", deal.ID)
		return 0, ErrInvalidDeal
	}

	if err := uc.dealRepo.SetActive(ctx, deal.ID, false); err != nil {
		uc.logger.Error("CreateBooking: failed to deactivate deal %s: %v", deal.ID, err)
		return 0, fmt.Errorf("%w: failed to deactivate deal: %v", ErrInternal, err)
	}

	return deal.DiscountedPriceCents, nil
}

// ensureUser creates a minimal customer profile when the authenticated id has
// no row yet. Existing profiles are left untouched.
func (uc *UseCase) ensureUser(ctx context.Context, userID uuid.UUID) error {
	_, err := uc.userRepo.GetByID(ctx, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		uc.logger.Error("CreateBooking: failed to get user %s: %v", userID, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if _, err := uc.userRepo.Upsert(ctx, &domain.User{ID: userID, Role: domain.RoleCustomer}); err != nil {
		uc.logger.Error("CreateBooking: failed to create user %s: %v", userID, err)
		return fmt.Errorf("%w: failed to create user: %v", ErrInternal, err)
	}

	return nil
}
