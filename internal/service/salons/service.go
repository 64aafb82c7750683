// Package salons manages salon registration, discovery and moderation.
package salons

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	salonRepo "github.com/salonplein/booking-platform/internal/infra/storage/salon"
	userRepo "github.com/salonplein/booking-platform/internal/infra/storage/user"
)

// Service manages salons.
type Service struct {
	salonRepo SalonRepository
	userRepo  UserRepository
	txManager TransactionManager
	logger    Logger
}

// NewService creates a salon service.
func NewService(salons SalonRepository, users UserRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		salonRepo: salons,
		userRepo:  users,
		txManager: txManager,
		logger:    logger,
	}
}

// RegisterRequest is a salon signup.
type RegisterRequest struct {
	OwnerID     uuid.UUID
	Name        string
	City        string
	Address     *string
	Postcode    *string
	Description *string
	Timezone    string
}

// Register signs up a new salon. The owner's profile is promoted to
// salon_owner and the salon starts as pending until an administrator
// approves it. Both writes happen in one transaction.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*domain.Salon, error) {
	s.logger.Info("Register: owner=%s, name=%q, city=%q", req.OwnerID, req.Name, req.City)

	if req.OwnerID == uuid.Nil {
		return nil, fmt.Errorf("%w: ownerID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.City) == "" {
		return nil, fmt.Errorf("%w: city is required", ErrInvalidInput)
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = domain.DefaultTimezone
	}

	salon := &domain.Salon{
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		City:        strings.TrimSpace(req.City),
		Address:     req.Address,
		Postcode:    req.Postcode,
		Description: req.Description,
		Status:      domain.SalonStatusPending,
		Timezone:    timezone,
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Make sure the owner has a profile, then promote it. Administrators
		// keep their role.
		owner, err := s.userRepo.GetByID(txCtx, req.OwnerID)
		if errors.Is(err, userRepo.ErrUserNotFound) {
			if _, err := s.userRepo.Upsert(txCtx, &domain.User{ID: req.OwnerID, Role: domain.RoleSalonOwner}); err != nil {
				return fmt.Errorf("%w: Register - create owner profile: %v", ErrInternal, err)
			}
		} else if err != nil {
			return fmt.Errorf("%w: Register - get owner: %v", ErrInternal, err)
		} else if owner.Role == domain.RoleCustomer {
			if err := s.userRepo.UpdateRole(txCtx, req.OwnerID, domain.RoleSalonOwner); err != nil {
				return fmt.Errorf("%w: Register - promote owner: %v", ErrInternal, err)
			}
		}

		if _, err := s.salonRepo.Create(txCtx, salon); err != nil {
			return fmt.Errorf("%w: Register - create salon: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Register: %v", err)
		return nil, err
	}

	s.logger.Info("Register: created salon %s (pending)", salon.ID)
	return salon, nil
}

// Search lists approved salons, optionally filtered by city.
func (s *Service) Search(ctx context.Context, city *string) ([]*domain.Salon, error) {
	status := domain.SalonStatusActive
	filter := salonRepo.SearchFilter{City: city, Status: &status}

	salons, err := s.salonRepo.Search(ctx, filter)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	return salons, nil
}

// GetPublic fetches one approved salon for the public detail page.
func (s *Service) GetPublic(ctx context.Context, id uuid.UUID) (*domain.Salon, error) {
	salon, err := s.getSalon(ctx, id)
	if err != nil {
		return nil, err
	}
	if !salon.IsActive() {
		s.logger.Warn("GetPublic: salon %s is not active", id)
		return nil, ErrSalonNotFound
	}
	return salon, nil
}

// ListByOwner fetches the salons of one owner, regardless of status.
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Salon, error) {
	salons, err := s.salonRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error("ListByOwner: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: ListByOwner - repository error: %v", ErrInternal, err)
	}
	return salons, nil
}

// GetOwned fetches a salon and verifies the caller owns it.
func (s *Service) GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*domain.Salon, error) {
	salon, err := s.getSalon(ctx, id)
	if err != nil {
		return nil, err
	}
	if salon.OwnerID != ownerID {
		s.logger.Warn("GetOwned: user %s does not own salon %s", ownerID, id)
		return nil, ErrAccessDenied
	}
	return salon, nil
}

// ListAll fetches every salon regardless of status. Administrators only.
func (s *Service) ListAll(ctx context.Context, adminID uuid.UUID) ([]*domain.Salon, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	salons, err := s.salonRepo.Search(ctx, salonRepo.SearchFilter{})
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}
	return salons, nil
}

// Moderate approves or rejects a pending salon. Administrators only.
func (s *Service) Moderate(ctx context.Context, adminID, salonID uuid.UUID, status domain.SalonStatus) (*domain.Salon, error) {
	s.logger.Info("Moderate: admin=%s, salon=%s, status=%s", adminID, salonID, status)

	if !domain.ValidSalonStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	if err := s.salonRepo.UpdateStatus(ctx, salonID, status); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			return nil, ErrSalonNotFound
		}
		s.logger.Error("Moderate: failed to update salon %s: %v", salonID, err)
		return nil, fmt.Errorf("%w: Moderate - update status: %v", ErrInternal, err)
	}

	return s.getSalon(ctx, salonID)
}

// Delete removes a salon and everything attached to it. Administrators only.
func (s *Service) Delete(ctx context.Context, adminID, salonID uuid.UUID) error {
	s.logger.Info("Delete: admin=%s, salon=%s", adminID, salonID)

	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	if err := s.salonRepo.Delete(ctx, salonID); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			return ErrSalonNotFound
		}
		s.logger.Error("Delete: failed to delete salon %s: %v", salonID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
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
