package get_availability

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
)

// generateCandidateSlots walks one opening-hours interval on a fixed
// 15-minute grid and yields every start whose full footprint
// [start, start+footprint) fits inside the interval.
//
// The grid is anchored at the interval start, so an interval opening at
// 09:10 produces 09:10, 09:25, 09:40 and so on. Slots are generated
// regardless of occupancy; filtering happens afterwards.
func generateCandidateSlots(
	hour *domain.OpeningHour,
	date time.Time,
	loc *time.Location,
	footprint time.Duration,
) ([]domain.CandidateSlot, error) {
	intervalStart, err := hour.StartTime.OnDate(date, loc)
	if err != nil {
		return nil, err
	}
	intervalEnd, err := hour.EndTime.OnDate(date, loc)
	if err != nil {
		return nil, err
	}

	// Inverted or empty intervals produce nothing.
	if !intervalStart.Before(intervalEnd) {
		return []domain.CandidateSlot{}, nil
	}

	slots := make([]domain.CandidateSlot, 0)
	step := domain.SlotStepMinutes * time.Minute

	for start := intervalStart; !start.Add(footprint).After(intervalEnd); start = start.Add(step) {
		slots = append(slots, domain.CandidateSlot{
			StaffID: hour.StaffID,
			StartAt: start,
		})
	}

	return slots, nil
}

// overlapsAny reports whether the half-open window [start, end) intersects
// any blocked time or active booking of the slot's staff member. Boundary
// touching is not an overlap.
func overlapsAny(
	staffID uuid.UUID,
	start, end time.Time,
	blocks []*domain.BlockedTime,
	bookings []*domain.Booking,
) bool {
	for _, b := range blocks {
		if b.StaffID == staffID && b.Overlaps(start, end) {
			return true
		}
	}
	for _, b := range bookings {
		if b.StaffID == staffID && b.IsActive() && b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// filterSlots drops candidates that are in the past or whose footprint
// collides with a block or booking.
func filterSlots(
	candidates []domain.CandidateSlot,
	footprint time.Duration,
	now time.Time,
	blocks []*domain.BlockedTime,
	bookings []*domain.Booking,
) []domain.CandidateSlot {
	out := make([]domain.CandidateSlot, 0, len(candidates))

	for _, c := range candidates {
		if !c.StartAt.After(now) {
			continue
		}
		if overlapsAny(c.StaffID, c.StartAt, c.StartAt.Add(footprint), blocks, bookings) {
			continue
		}
		out = append(out, c)
	}

	return out
}

// sortSlots orders slots by start instant, breaking ties by staff id so the
// response is deterministic.
func sortSlots(slots []Slot) {
	sort.Slice(slots, func(i, j int) bool {
		if !slots[i].StartAt.Equal(slots[j].StartAt) {
			return slots[i].StartAt.Before(slots[j].StartAt)
		}
		return slots[i].StaffID.String() < slots[j].StaffID.String()
	})
}
