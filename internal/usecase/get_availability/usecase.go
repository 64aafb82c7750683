// Package get_availability computes the bookable slots of one service on one
// calendar date. Slots are ephemeral: every query recomputes them from
// opening hours, blocked times and active bookings.
package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	catalogRepo "github.com/salonplein/booking-platform/internal/infra/storage/catalog"
	salonRepo "github.com/salonplein/booking-platform/internal/infra/storage/salon"
)

// UseCase computes availability.
type UseCase struct {
	salonRepo    SalonRepository
	catalogRepo  CatalogRepository
	staffRepo    StaffRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the availability use case.
func NewUseCase(
	salons SalonRepository,
	catalog CatalogRepository,
	staff StaffRepository,
	schedule ScheduleRepository,
	bookings BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		salonRepo:    salons,
		catalogRepo:  catalog,
		staffRepo:    staff,
		scheduleRepo: schedule,
		bookingRepo:  bookings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute computes the bookable slots for the request.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: salon=%s, service=%s, date=%s",
		req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Validate the request shape.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Load the salon; only approved salons are bookable.
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("GetAvailability: salon %s not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetAvailability: failed to get salon %s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}
	if !salon.IsActive() {
		uc.logger.Warn("GetAvailability: salon %s is not active", req.SalonID)
		return nil, ErrSalonNotFound
	}

	// 3. Load the service; it must belong to the salon and be active.
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailability: service %s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get service %s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.SalonID != req.SalonID || !service.IsActive {
		uc.logger.Warn("GetAvailability: service %s not available at salon %s", req.ServiceID, req.SalonID)
		return nil, ErrServiceNotFound
	}

	// The footprint a booking occupies: duration plus buffer.
	if service.EffectiveDurationMinutes() <= 0 {
		uc.logger.Warn("GetAvailability: service %s has non-positive footprint", req.ServiceID)
		return nil, ErrInvalidService
	}
	footprint := service.EffectiveDuration()

	// 4. Resolve the eligible, active staff members.
	staff, err := uc.resolveStaff(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(staff) == 0 {
		uc.logger.Info("GetAvailability: no eligible staff for service %s", req.ServiceID)
		return uc.emptyResponse(req, service), nil
	}

	staffIDs := make([]uuid.UUID, 0, len(staff))
	staffNames := make(map[uuid.UUID]string, len(staff))
	for _, m := range staff {
		staffIDs = append(staffIDs, m.ID)
		staffNames[m.ID] = m.Name
	}

	// 5. Anchor the calendar date in the salon's timezone.
	loc, err := salon.Location()
	if err != nil {
		uc.logger.Error("GetAvailability: salon %s has invalid timezone %q: %v", salon.ID, salon.Timezone, err)
		return nil, fmt.Errorf("%w: failed to resolve salon timezone: %v", ErrInternal, err)
	}
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)
	weekday := int(dayStart.Weekday())

	// 6. Load the schedule for that weekday.
	hours, err := uc.scheduleRepo.ListOpeningHours(ctx, staffIDs, weekday)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get opening hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get opening hours: %v", ErrInternal, err)
	}
	if len(hours) == 0 {
		uc.logger.Info("GetAvailability: no opening hours on weekday %d for service %s", weekday, req.ServiceID)
		return uc.emptyResponse(req, service), nil
	}

	// 7. Load the occupancy of the day in one round trip each.
	blocks, err := uc.scheduleRepo.ListBlocksOverlapping(ctx, staffIDs, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get blocked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListActiveOverlapping(ctx, staffIDs, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Generate candidates per opening interval and drop the occupied ones.
	candidates := make([]domain.CandidateSlot, 0)
	for _, hour := range hours {
		generated, err := generateCandidateSlots(hour, dayStart, loc, footprint)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to generate slots: %v", err)
			return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}
		candidates = append(candidates, generated...)
	}

	available := filterSlots(candidates, footprint, now, blocks, bookings)

	// 9. Shape the response.
	slots := make([]Slot, 0, len(available))
	for _, c := range available {
		slots = append(slots, Slot{
			StaffID:   c.StaffID,
			StaffName: staffNames[c.StaffID],
			StartAt:   c.StartAt,
		})
	}
	sortSlots(slots)

	uc.logger.Info("GetAvailability: %d slots for salon=%s, service=%s, date=%s",
		len(slots), req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            dayStart,
		SalonID:         req.SalonID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}

// resolveStaff loads the staff members eligible for the service, keeps only
// the active ones belonging to the salon, and applies the optional staff
// filter. An unknown or ineligible staff filter yields an empty set, not an
// error: the slot list is simply empty.
func (uc *UseCase) resolveStaff(ctx context.Context, req *Request) ([]*domain.StaffMember, error) {
	eligibleIDs, err := uc.catalogRepo.ListEligibleStaffIDs(ctx, req.ServiceID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get eligible staff: %v", err)
		return nil, fmt.Errorf("%w: failed to get eligible staff: %v", ErrInternal, err)
	}
	if len(eligibleIDs) == 0 {
		return []*domain.StaffMember{}, nil
	}

	members, err := uc.staffRepo.ListByIDs(ctx, eligibleIDs)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get staff members: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff members: %v", ErrInternal, err)
	}

	out := make([]*domain.StaffMember, 0, len(members))
	for _, m := range members {
		if !m.IsActive || m.SalonID != req.SalonID {
			continue
		}
		if req.StaffID != nil && m.ID != *req.StaffID {
			continue
		}
		out = append(out, m)
	}

	return out, nil
}

func (uc *UseCase) emptyResponse(req *Request, service *domain.Service) *Response {
	return &Response{
		Date:            req.Date,
		SalonID:         req.SalonID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           []Slot{},
	}
}
