// Package catalog manages the services a salon offers and which staff
// members may perform them.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	catalogRepo "github.com/salonplein/booking-platform/internal/infra/storage/catalog"
	salonRepo "github.com/salonplein/booking-platform/internal/infra/storage/salon"
	staffRepo "github.com/salonplein/booking-platform/internal/infra/storage/staff"
)

// Service manages the service catalog.
type Service struct {
	catalogRepo CatalogRepository
	salonRepo   SalonRepository
	staffRepo   StaffRepository
	logger      Logger
}

// NewService creates a catalog service.
func NewService(catalog CatalogRepository, salons SalonRepository, staff StaffRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalog,
		salonRepo:   salons,
		staffRepo:   staff,
		logger:      logger,
	}
}

// CreateRequest describes a new service.
type CreateRequest struct {
	SalonID          uuid.UUID
	Name             string
	Category         *string
	DurationMinutes  int
	BufferMinutes    int
	PriceCents       int64
	CancelUntilHours int
}

// Create adds a service to the caller's salon.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, req *CreateRequest) (*domain.Service, error) {
	s.logger.Info("Create: owner=%s, salon=%s, name=%q", ownerID, req.SalonID, req.Name)

	if err := validateServiceFields(req.Name, req.DurationMinutes, req.BufferMinutes, req.PriceCents, req.CancelUntilHours); err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, req.SalonID, ownerID); err != nil {
		return nil, err
	}

	cancelUntil := req.CancelUntilHours
	if cancelUntil == 0 {
		cancelUntil = domain.DefaultCancelUntilHours
	}

	svc := &domain.Service{
		SalonID:          req.SalonID,
		Name:             strings.TrimSpace(req.Name),
		Category:         req.Category,
		DurationMinutes:  req.DurationMinutes,
		BufferMinutes:    req.BufferMinutes,
		PriceCents:       req.PriceCents,
		CancelUntilHours: cancelUntil,
		IsActive:         true,
	}

	created, err := s.catalogRepo.CreateService(ctx, svc)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	return created, nil
}

// ListPublic fetches the active services of an approved salon.
func (s *Service) ListPublic(ctx context.Context, salonID uuid.UUID) ([]*domain.Service, error) {
	salon, err := s.getSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if !salon.IsActive() {
		return nil, ErrSalonNotFound
	}

	services, err := s.catalogRepo.ListServicesBySalonIDs(ctx, []uuid.UUID{salonID})
	if err != nil {
		s.logger.Error("ListPublic: repository error for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListPublic - repository error: %v", ErrInternal, err)
	}

	active := make([]*domain.Service, 0, len(services))
	for _, svc := range services {
		if svc.IsActive {
			active = append(active, svc)
		}
	}
	return active, nil
}

// ListForSalon fetches all services of the caller's salon, active or not.
func (s *Service) ListForSalon(ctx context.Context, ownerID, salonID uuid.UUID) ([]*domain.Service, error) {
	if err := s.requireOwnership(ctx, salonID, ownerID); err != nil {
		return nil, err
	}

	services, err := s.catalogRepo.ListServicesBySalonIDs(ctx, []uuid.UUID{salonID})
	if err != nil {
		s.logger.Error("ListForSalon: repository error for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListForSalon - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

// UpdateRequest carries the optional fields of Update.
type UpdateRequest struct {
	Name             *string
	Category         *string
	DurationMinutes  *int
	BufferMinutes    *int
	PriceCents       *int64
	CancelUntilHours *int
	IsActive         *bool
}

// Update changes a service of the caller's salon. Existing bookings keep the
// footprint they were created with.
func (s *Service) Update(ctx context.Context, ownerID, serviceID uuid.UUID, req *UpdateRequest) (*domain.Service, error) {
	s.logger.Info("Update: owner=%s, service=%s", ownerID, serviceID)

	if err := validateUpdate(req); err != nil {
		return nil, err
	}

	svc, err := s.getService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, svc.SalonID, ownerID); err != nil {
		return nil, err
	}

	updated, err := s.catalogRepo.UpdateService(ctx, serviceID, catalogRepo.ServiceUpdate{
		Name:             req.Name,
		Category:         req.Category,
		DurationMinutes:  req.DurationMinutes,
		BufferMinutes:    req.BufferMinutes,
		PriceCents:       req.PriceCents,
		CancelUntilHours: req.CancelUntilHours,
		IsActive:         req.IsActive,
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return updated, nil
}

// LinkStaff marks a staff member as able to perform a service. Both must
// belong to the caller's salon.
func (s *Service) LinkStaff(ctx context.Context, ownerID, serviceID, staffID uuid.UUID) error {
	s.logger.Info("LinkStaff: owner=%s, service=%s, staff=%s", ownerID, serviceID, staffID)

	svc, member, err := s.resolveLink(ctx, ownerID, serviceID, staffID)
	if err != nil {
		return err
	}
	if member.SalonID != svc.SalonID {
		return ErrStaffMismatch
	}

	if err := s.catalogRepo.LinkStaff(ctx, serviceID, staffID); err != nil {
		s.logger.Error("LinkStaff: repository error: %v", err)
		return fmt.Errorf("%w: LinkStaff - repository error: %v", ErrInternal, err)
	}
	return nil
}

// UnlinkStaff removes a staff member's eligibility for a service.
func (s *Service) UnlinkStaff(ctx context.Context, ownerID, serviceID, staffID uuid.UUID) error {
	s.logger.Info("UnlinkStaff: owner=%s, service=%s, staff=%s", ownerID, serviceID, staffID)

	if _, _, err := s.resolveLink(ctx, ownerID, serviceID, staffID); err != nil {
		return err
	}

	if err := s.catalogRepo.UnlinkStaff(ctx, serviceID, staffID); err != nil {
		s.logger.Error("UnlinkStaff: repository error: %v", err)
		return fmt.Errorf("%w: UnlinkStaff - repository error: %v", ErrInternal, err)
	}
	return nil
}

// ListEligibleStaffIDs fetches the staff ids linked to a service of the
// caller's salon.
func (s *Service) ListEligibleStaffIDs(ctx context.Context, ownerID, serviceID uuid.UUID) ([]uuid.UUID, error) {
	svc, err := s.getService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, svc.SalonID, ownerID); err != nil {
		return nil, err
	}

	ids, err := s.catalogRepo.ListEligibleStaffIDs(ctx, serviceID)
	if err != nil {
		s.logger.Error("ListEligibleStaffIDs: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEligibleStaffIDs - repository error: %v", ErrInternal, err)
	}
	return ids, nil
}

func (s *Service) resolveLink(ctx context.Context, ownerID, serviceID, staffID uuid.UUID) (*domain.Service, *domain.StaffMember, error) {
	svc, err := s.getService(ctx, serviceID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.requireOwnership(ctx, svc.SalonID, ownerID); err != nil {
		return nil, nil, err
	}

	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, nil, ErrStaffNotFound
		}
		s.logger.Error("resolveLink: repository error for staff=%s: %v", staffID, err)
		return nil, nil, fmt.Errorf("%w: resolveLink - repository error: %v", ErrInternal, err)
	}

	return svc, member, nil
}

func (s *Service) getService(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	svc, err := s.catalogRepo.GetServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("getService: repository error for service=%s: %v", id, err)
		return nil, fmt.Errorf("%w: getService - repository error: %v", ErrInternal, err)
	}
	return svc, nil
}

func (s *Service) getSalon(ctx context.Context, id uuid.UUID) (*domain.Salon, error) {
	salon, err := s.salonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			return nil, ErrSalonNotFound
		}
		s.logger.Error("getSalon: repository error for salon=%s: %v", id, err)
		return nil, fmt.Errorf("%w: getSalon - repository error: %v", ErrInternal, err)
	}
	return salon, nil
}

func (s *Service) requireOwnership(ctx context.Context, salonID, ownerID uuid.UUID) error {
	salon, err := s.getSalon(ctx, salonID)
	if err != nil {
		return err
	}
	if salon.OwnerID != ownerID {
		s.logger.Warn("requireOwnership: user %s does not own salon %s", ownerID, salonID)
		return ErrAccessDenied
	}
	return nil
}

func validateServiceFields(name string, duration, buffer int, priceCents int64, cancelUntil int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if duration < domain.MinServiceDurationMinutes || duration > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	if buffer < domain.MinBufferMinutes || buffer > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: buffer must be between %d and %d minutes",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}
	if priceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if cancelUntil < domain.MinCancelUntilHours || cancelUntil > domain.MaxCancelUntilHours {
		return fmt.Errorf("%w: cancellation notice must be between %d and %d hours",
			ErrInvalidInput, domain.MinCancelUntilHours, domain.MaxCancelUntilHours)
	}
	return nil
}

func validateUpdate(req *UpdateRequest) error {
	if req.Name == nil && req.Category == nil && req.DurationMinutes == nil && req.BufferMinutes == nil &&
		req.PriceCents == nil && req.CancelUntilHours == nil && req.IsActive == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if req.DurationMinutes != nil &&
		(*req.DurationMinutes < domain.MinServiceDurationMinutes || *req.DurationMinutes > domain.MaxServiceDurationMinutes) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	if req.BufferMinutes != nil &&
		(*req.BufferMinutes < domain.MinBufferMinutes || *req.BufferMinutes > domain.MaxBufferMinutes) {
		return fmt.Errorf("%w: buffer must be between %d and %d minutes",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}
	if req.PriceCents != nil && *req.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.CancelUntilHours != nil &&
		(*req.CancelUntilHours < domain.MinCancelUntilHours || *req.CancelUntilHours > domain.MaxCancelUntilHours) {
		return fmt.Errorf("%w: cancellation notice must be between %d and %d hours",
			ErrInvalidInput, domain.MinCancelUntilHours, domain.MaxCancelUntilHours)
	}
	return nil
}
