// Package staff manages the staff members of a salon. All writes are
// owner-scoped: the caller must own the salon the staff member works at.
package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	salonRepo "github.com/salonplein/booking-platform/internal/infra/storage/salon"
	staffRepo "github.com/salonplein/booking-platform/internal/infra/storage/staff"
)

// Service manages staff members.
type Service struct {
	staffRepo StaffRepository
	salonRepo SalonRepository
	logger    Logger
}

// NewService creates a staff service.
func NewService(staff StaffRepository, salons SalonRepository, logger Logger) *Service {
	return &Service{
		staffRepo: staff,
		salonRepo: salons,
		logger:    logger,
	}
}

// Create adds a staff member to the caller's salon.
func (s *Service) Create(ctx context.Context, ownerID, salonID uuid.UUID, name string) (*domain.StaffMember, error) {
	s.logger.Info("Create: owner=%s, salon=%s, name=%q", ownerID, salonID, name)

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := s.requireOwnership(ctx, salonID, ownerID); err != nil {
		return nil, err
	}

	member := &domain.StaffMember{
		SalonID:  salonID,
		Name:     strings.TrimSpace(name),
		IsActive: true,
	}

	created, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	return created, nil
}

// ListForSalon fetches the staff of the caller's salon.
func (s *Service) ListForSalon(ctx context.Context, ownerID, salonID uuid.UUID) ([]*domain.StaffMember, error) {
	if err := s.requireOwnership(ctx, salonID, ownerID); err != nil {
		return nil, err
	}

	members, err := s.staffRepo.ListBySalonIDs(ctx, []uuid.UUID{salonID})
	if err != nil {
		s.logger.Error("ListForSalon: repository error for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListForSalon - repository error: %v", ErrInternal, err)
	}

	return members, nil
}

// Update renames or (de)activates a staff member of the caller's salon.
// Deactivating removes the member from future availability without touching
// existing bookings.
func (s *Service) Update(ctx context.Context, ownerID, staffID uuid.UUID, name *string, isActive *bool) (*domain.StaffMember, error) {
	s.logger.Info("Update: owner=%s, staff=%s", ownerID, staffID)

	if name == nil && isActive == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if name != nil && strings.TrimSpace(*name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	member, err := s.getMember(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, member.SalonID, ownerID); err != nil {
		return nil, err
	}

	updated, err := s.staffRepo.Update(ctx, staffID, name, isActive)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Update: repository error for staff=%s: %v", staffID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return updated, nil
}

// ListPublic fetches the active staff of an approved salon.
func (s *Service) ListPublic(ctx context.Context, salonID uuid.UUID) ([]*domain.StaffMember, error) {
	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			return nil, ErrSalonNotFound
		}
		s.logger.Error("ListPublic: repository error for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListPublic - repository error: %v", ErrInternal, err)
	}
	if !salon.IsActive() {
		return nil, ErrSalonNotFound
	}

	members, err := s.staffRepo.ListBySalonIDs(ctx, []uuid.UUID{salonID})
	if err != nil {
		s.logger.Error("ListPublic: repository error for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListPublic - repository error: %v", ErrInternal, err)
	}

	active := make([]*domain.StaffMember, 0, len(members))
	for _, m := range members {
		if m.IsActive {
			active = append(active, m)
		}
	}
	return active, nil
}

// GetOwned fetches a staff member and verifies the caller owns their salon.
func (s *Service) GetOwned(ctx context.Context, ownerID, staffID uuid.UUID) (*domain.StaffMember, error) {
	member, err := s.getMember(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, member.SalonID, ownerID); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) getMember(ctx context.Context, staffID uuid.UUID) (*domain.StaffMember, error) {
	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("getMember: repository error for staff=%s: %v", staffID, err)
		return nil, fmt.Errorf("%w: getMember - repository error: %v", ErrInternal, err)
	}
	return member, nil
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
