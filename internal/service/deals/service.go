// Package deals manages one-shot discounted slots. Owners create deals for a
// specific staff member, service and start instant; customers browse the
// active ones and redeem them at booking time.
package deals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	catalogRepo "github.com/salonplein/booking-platform/internal/infra/storage/catalog"
	dealRepo "github.com/salonplein/booking-platform/internal/infra/storage/deal"
	salonRepo "github.com/salonplein/booking-platform/internal/infra/storage/salon"
	staffRepo "github.com/salonplein/booking-platform/internal/infra/storage/staff"
)

// Service manages deals.
type Service struct {
	dealRepo     DealRepository
	catalogRepo  CatalogRepository
	staffRepo    StaffRepository
	salonRepo    SalonRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a deal service.
func NewService(
	deals DealRepository,
	catalog CatalogRepository,
	staff StaffRepository,
	salons SalonRepository,
	logger Logger,
) *Service {
	return &Service{
		dealRepo:     deals,
		catalogRepo:  catalog,
		staffRepo:    staff,
		salonRepo:    salons,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CreateRequest describes a new deal.
type CreateRequest struct {
	SalonID              uuid.UUID
	ServiceID            uuid.UUID
	StaffID              uuid.UUID
	StartAt              time.Time
	DiscountedPriceCents int64
	ExpiresAt            time.Time
}

// Create publishes a deal for the caller's salon. The discounted slot must
// reference a service and an eligible, active staff member of that salon,
// start in the future, and expire no later than the slot itself starts.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, req *CreateRequest) (*domain.Deal, error) {
	s.logger.Info("Create: owner=%s, salon=%s, service=%s, staff=%s, start=%s",
		ownerID, req.SalonID, req.ServiceID, req.StaffID, req.StartAt)

	now := s.timeProvider.Now()
	if err := s.validateCreate(req, now); err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, req.SalonID, ownerID); err != nil {
		return nil, err
	}

	svc, err := s.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Create: failed to get service %s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: Create - get service: %v", ErrInternal, err)
	}
	if svc.SalonID != req.SalonID || !svc.IsActive {
		return nil, ErrServiceNotFound
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Create: failed to get staff %s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: Create - get staff: %v", ErrInternal, err)
	}
	if member.SalonID != req.SalonID || !member.IsActive {
		return nil, ErrStaffNotFound
	}

	eligible, err := s.catalogRepo.IsStaffEligible(ctx, req.ServiceID, req.StaffID)
	if err != nil {
		s.logger.Error("Create: failed to check eligibility: %v", err)
		return nil, fmt.Errorf("%w: Create - check eligibility: %v", ErrInternal, err)
	}
	if !eligible {
		return nil, ErrStaffNotEligible
	}

	deal := &domain.Deal{
		SalonID:              req.SalonID,
		ServiceID:            req.ServiceID,
		StaffID:              req.StaffID,
		StartAt:              req.StartAt,
		EndAt:                req.StartAt.Add(svc.EffectiveDuration()),
		DiscountedPriceCents: req.DiscountedPriceCents,
		ExpiresAt:            req.ExpiresAt,
		IsActive:             true,
	}

	created, err := s.dealRepo.Create(ctx, deal)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	return created, nil
}

// ListPublic fetches the active, unexpired deals for the deals page.
func (s *Service) ListPublic(ctx context.Context) ([]*domain.Deal, error) {
	deals, err := s.dealRepo.ListActivePublic(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ListPublic: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPublic - repository error: %v", ErrInternal, err)
	}
	return deals, nil
}

// ListForSalon fetches every deal of the caller's salon, redeemed or not.
func (s *Service) ListForSalon(ctx context.Context, ownerID, salonID uuid.UUID) ([]*domain.Deal, error) {
	if err := s.requireOwnership(ctx, salonID, ownerID); err != nil {
		return nil, err
	}

	deals, err := s.dealRepo.ListBySalonIDs(ctx, []uuid.UUID{salonID})
	if err != nil {
		s.logger.Error("ListForSalon: repository error for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListForSalon - repository error: %v", ErrInternal, err)
	}
	return deals, nil
}

// Deactivate withdraws an unredeemed deal of the caller's salon.
func (s *Service) Deactivate(ctx context.Context, ownerID, dealID uuid.UUID) error {
	s.logger.Info("Deactivate: owner=%s, deal=%s", ownerID, dealID)

	deal, err := s.ownedDeal(ctx, ownerID, dealID)
	if err != nil {
		return err
	}

	if err := s.dealRepo.SetActive(ctx, deal.ID, false); err != nil {
		if errors.Is(err, dealRepo.ErrDealNotFound) {
			return ErrDealNotFound
		}
		s.logger.Error("Deactivate: repository error for deal=%s: %v", dealID, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}
	return nil
}

// Delete removes a deal of the caller's salon.
func (s *Service) Delete(ctx context.Context, ownerID, dealID uuid.UUID) error {
	s.logger.Info("Delete: owner=%s, deal=%s", ownerID, dealID)

	if _, err := s.ownedDeal(ctx, ownerID, dealID); err != nil {
		return err
	}

	if err := s.dealRepo.Delete(ctx, dealID); err != nil {
		if errors.Is(err, dealRepo.ErrDealNotFound) {
			return ErrDealNotFound
		}
		s.logger.Error("Delete: repository error for deal=%s: %v", dealID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) ownedDeal(ctx context.Context, ownerID, dealID uuid.UUID) (*domain.Deal, error) {
	deal, err := s.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, dealRepo.ErrDealNotFound) {
			return nil, ErrDealNotFound
		}
		s.logger.Error("ownedDeal: repository error for deal=%s: %v", dealID, err)
		return nil, fmt.Errorf("%w: ownedDeal - repository error: %v", ErrInternal, err)
	}
	if err := s.requireOwnership(ctx, deal.SalonID, ownerID); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *Service) requireOwnership(ctx context.Context, salonID, ownerID uuid.UUID) error {
	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			return ErrSalonNotFound
		}
		s.logger.Error("requireOwnership: repository error for salon=%s: %v", salonID, err)
		return fmt.Errorf("%w: requireOwnership - repository error: %v", ErrInternal, err)
	}
	if salon.OwnerID != ownerID {
		s.logger.Warn("requireOwnership: user %s does not own salon %s", ownerID, salonID)
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) validateCreate(req *CreateRequest, now time.Time) error {
	if req.SalonID == uuid.Nil || req.ServiceID == uuid.Nil || req.StaffID == uuid.Nil {
		return fmt.Errorf("%w: salonID, serviceID and staffID are required", ErrInvalidInput)
	}
	if req.StartAt.IsZero() || req.ExpiresAt.IsZero() {
		return fmt.Errorf("%w: startAt and expiresAt are required", ErrInvalidInput)
	}
	if !req.StartAt.After(now) {
		return fmt.Errorf("%w: startAt must be in the future", ErrInvalidInput)
	}
	if req.ExpiresAt.After(req.StartAt) {
		return fmt.Errorf("%w: expiresAt must not be after the slot start", ErrInvalidInput)
	}
	if !req.ExpiresAt.After(now) {
		return fmt.Errorf("%w: expiresAt must be in the future", ErrInvalidInput)
	}
	if req.DiscountedPriceCents < 0 {
		return fmt.Errorf("%w: discounted price must not be negative", ErrInvalidInput)
	}
	return nil
}
