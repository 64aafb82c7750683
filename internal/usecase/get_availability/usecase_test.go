package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/pkg/ptr"
	"github.com/salonplein/booking-platform/pkg/types"
)

type salonRepoMock struct {
	getByID func(ctx context.Context, id uuid.UUID) (*domain.Salon, error)
}

func (m *salonRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error) {
	return m.getByID(ctx, id)
}

type catalogRepoMock struct {
	getServiceByID       func(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	listEligibleStaffIDs func(ctx context.Context, serviceID uuid.UUID) ([]uuid.UUID, error)
}

func (m *catalogRepoMock) GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	return m.getServiceByID(ctx, id)
}

func (m *catalogRepoMock) ListEligibleStaffIDs(ctx context.Context, serviceID uuid.UUID) ([]uuid.UUID, error) {
	return m.listEligibleStaffIDs(ctx, serviceID)
}

type staffRepoMock struct {
	listByIDs func(ctx context.Context, ids []uuid.UUID) ([]*domain.StaffMember, error)
}

func (m *staffRepoMock) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.StaffMember, error) {
	return m.listByIDs(ctx, ids)
}

type scheduleRepoMock struct {
	listOpeningHours      func(ctx context.Context, staffIDs []uuid.UUID, weekday int) ([]*domain.OpeningHour, error)
	listBlocksOverlapping func(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*domain.BlockedTime, error)
}

func (m *scheduleRepoMock) ListOpeningHours(ctx context.Context, staffIDs []uuid.UUID, weekday int) ([]*domain.OpeningHour, error) {
	return m.listOpeningHours(ctx, staffIDs, weekday)
}

func (m *scheduleRepoMock) ListBlocksOverlapping(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*domain.BlockedTime, error) {
	return m.listBlocksOverlapping(ctx, staffIDs, from, to)
}

type bookingRepoMock struct {
	listActiveOverlapping func(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*domain.Booking, error)
}

func (m *bookingRepoMock) ListActiveOverlapping(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*domain.Booking, error) {
	return m.listActiveOverlapping(ctx, staffIDs, from, to)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	salonID   uuid.UUID
	serviceID uuid.UUID
	staffID   uuid.UUID
	loc       *time.Location

	salon   *domain.Salon
	service *domain.Service
	staff   []*domain.StaffMember
	hours   []*domain.OpeningHour
	blocks  []*domain.BlockedTime
	booked  []*domain.Booking

	now  time.Time
	date time.Time
}

// newFixture sets up one active salon with one staff member working
// 09:00-12:00 on the requested date, offering a 45-minute service with a
// 15-minute buffer (a one-hour footprint).
func newFixture(t *testing.T) *fixture {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)

	f := &fixture{
		salonID:   uuid.New(),
		serviceID: uuid.New(),
		staffID:   uuid.New(),
		loc:       loc,
	}

	// 2026-09-09 is a Wednesday.
	f.date = time.Date(2026, 9, 9, 0, 0, 0, 0, loc)
	f.now = time.Date(2026, 9, 1, 10, 0, 0, 0, loc)

	f.salon = &domain.Salon{
		ID:       f.salonID,
		OwnerID:  uuid.New(),
		Name:     "Salon Voorbeeld",
		City:     "Utrecht",
		Status:   domain.SalonStatusActive,
		Timezone: "Europe/Amsterdam",
	}
	f.service = &domain.Service{
		ID:              f.serviceID,
		SalonID:         f.salonID,
		Name:            "Knippen en stylen",
		DurationMinutes: 45,
		BufferMinutes:   15,
		PriceCents:      4500,
		IsActive:        true,
	}
	f.staff = []*domain.StaffMember{
		{ID: f.staffID, SalonID: f.salonID, Name: "Emma", IsActive: true},
	}
	f.hours = []*domain.OpeningHour{
		{ID: uuid.New(), StaffID: f.staffID, Weekday: 3, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("12:00")},
	}
	f.blocks = []*domain.BlockedTime{}
	f.booked = []*domain.Booking{}

	return f
}

func (f *fixture) useCase() *UseCase {
	uc := NewUseCase(
		&salonRepoMock{getByID: func(ctx context.Context, id uuid.UUID) (*domain.Salon, error) {
			return f.salon, nil
		}},
		&catalogRepoMock{
			getServiceByID: func(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
				return f.service, nil
			},
			listEligibleStaffIDs: func(ctx context.Context, serviceID uuid.UUID) ([]uuid.UUID, error) {
				ids := make([]uuid.UUID, 0, len(f.staff))
				for _, m := range f.staff {
					ids = append(ids, m.ID)
				}
				return ids, nil
			},
		},
		&staffRepoMock{listByIDs: func(ctx context.Context, ids []uuid.UUID) ([]*domain.StaffMember, error) {
			return f.staff, nil
		}},
		&scheduleRepoMock{
			listOpeningHours: func(ctx context.Context, staffIDs []uuid.UUID, weekday int) ([]*domain.OpeningHour, error) {
				wanted := make(map[uuid.UUID]bool, len(staffIDs))
				for _, id := range staffIDs {
					wanted[id] = true
				}
				out := make([]*domain.OpeningHour, 0)
				for _, h := range f.hours {
					if h.Weekday == weekday && wanted[h.StaffID] {
						out = append(out, h)
					}
				}
				return out, nil
			},
			listBlocksOverlapping: func(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*domain.BlockedTime, error) {
				return f.blocks, nil
			},
		},
		&bookingRepoMock{listActiveOverlapping: func(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*domain.Booking, error) {
			return f.booked, nil
		}},
		&noopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: f.now}
	return uc
}

func (f *fixture) at(hour, minute int) time.Time {
	return time.Date(2026, 9, 9, hour, minute, 0, 0, f.loc)
}

func (f *fixture) request() *Request {
	return &Request{SalonID: f.salonID, ServiceID: f.serviceID, Date: f.date}
}

func slotStarts(slots []Slot) []time.Time {
	out := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.StartAt)
	}
	return out
}

func TestExecute_FullOpenDay(t *testing.T) {
	f := newFixture(t)

	resp, err := f.useCase().Execute(context.Background(), f.request())

	require.NoError(t, err)
	// One-hour footprint on a 09:00-12:00 shift: starts 09:00 through 11:00
	// on the 15-minute grid.
	require.Len(t, resp.Slots, 9)
	assert.Equal(t, f.at(9, 0), resp.Slots[0].StartAt)
	assert.Equal(t, f.at(11, 0), resp.Slots[8].StartAt)
	assert.Equal(t, 45, resp.DurationMinutes)
	for _, s := range resp.Slots {
		assert.Equal(t, f.staffID, s.StaffID)
		assert.Equal(t, "Emma", s.StaffName)
	}
}

func TestExecute_BookingRemovesOverlappingStarts(t *testing.T) {
	f := newFixture(t)
	f.booked = []*domain.Booking{{
		ID:      uuid.New(),
		StaffID: f.staffID,
		StartAt: f.at(10, 0),
		EndAt:   f.at(11, 0),
		Status:  domain.StatusBooked,
	}}

	resp, err := f.useCase().Execute(context.Background(), f.request())

	require.NoError(t, err)
	// Every start whose one-hour footprint touches [10:00, 11:00) drops out.
	// 09:00 ends exactly at 10:00 and 11:00 starts exactly at the booking
	// end, so both survive.
	assert.Equal(t, []time.Time{f.at(9, 0), f.at(11, 0)}, slotStarts(resp.Slots))
}

func TestExecute_CancelledBookingFreesTheSlot(t *testing.T) {
	f := newFixture(t)
	f.booked = []*domain.Booking{{
		ID:      uuid.New(),
		StaffID: f.staffID,
		StartAt: f.at(10, 0),
		EndAt:   f.at(11, 0),
		Status:  domain.StatusCancelled,
	}}

	resp, err := f.useCase().Execute(context.Background(), f.request())

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 9)
}

func TestExecute_BlockedTimeRemovesOverlappingStarts(t *testing.T) {
	f := newFixture(t)
	f.blocks = []*domain.BlockedTime{{
		ID:      uuid.New(),
		StaffID: f.staffID,
		StartAt: f.at(9, 0),
		EndAt:   f.at(10, 0),
		Reason:  ptr.Ptr("pauze"),
	}}

	resp, err := f.useCase().Execute(context.Background(), f.request())

	require.NoError(t, err)
	// First available start is 10:00, the block's end boundary.
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, f.at(10, 0), resp.Slots[0].StartAt)
	assert.Len(t, resp.Slots, 5)
}

func TestExecute_SplitShifts(t *testing.T) {
	f := newFixture(t)
	f.hours = []*domain.OpeningHour{
		{ID: uuid.New(), StaffID: f.staffID, Weekday: 3, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("10:00")},
		{ID: uuid.New(), StaffID: f.staffID, Weekday: 3, StartTime: types.TimeString("13:00"), EndTime: types.TimeString("15:00")},
	}

	resp, err := f.useCase().Execute(context.Background(), f.request())

	require.NoError(t, err)
	// The morning shift fits exactly one footprint; the afternoon five.
	assert.Equal(t, []time.Time{
		f.at(9, 0),
		f.at(13, 0), f.at(13, 15), f.at(13, 30), f.at(13, 45), f.at(14, 0),
	}, slotStarts(resp.Slots))
}

func TestExecute_GridAnchoredAtIntervalStart(t *testing.T) {
	f := newFixture(t)
	f.hours = []*domain.OpeningHour{
		{ID: uuid.New(), StaffID: f.staffID, Weekday: 3, StartTime: types.TimeString("09:10"), EndTime: types.TimeString("11:10")},
	}

	resp, err := f.useCase().Execute(context.Background(), f.request())

	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		f.at(9, 10), f.at(9, 25), f.at(9, 40), f.at(9, 55), f.at(10, 10),
	}, slotStarts(resp.Slots))
}

func TestExecute_PastSlotsFilteredOnSameDay(t *testing.T) {
	f := newFixture(t)
	f.now = f.at(10, 5)

	resp, err := f.useCase().Execute(context.Background(), f.request())

	require.NoError(t, err)
	// Only strictly future starts remain.
	assert.Equal(t, []time.Time{
		f.at(10, 15), f.at(10, 30), f.at(10, 45), f.at(11, 0),
	}, slotStarts(resp.Slots))
}

func TestExecute_StaffFilter(t *testing.T) {
	f := newFixture(t)
	other := uuid.New()
	f.staff = append(f.staff, &domain.StaffMember{ID: other, SalonID: f.salonID, Name: "Noor", IsActive: true})
	f.hours = append(f.hours, &domain.OpeningHour{
		ID: uuid.New(), StaffID: other, Weekday: 3,
		StartTime: types.TimeString("09:00"), EndTime: types.TimeString("12:00"),
	})

	req := f.request()
	req.StaffID = &f.staffID

	resp, err := f.useCase().Execute(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, resp.Slots, 9)
	for _, s := range resp.Slots {
		assert.Equal(t, f.staffID, s.StaffID)
	}
}

func TestExecute_IneligibleStaffFilterYieldsEmpty(t *testing.T) {
	f := newFixture(t)
	req := f.request()
	req.StaffID = ptr.Ptr(uuid.New())

	resp, err := f.useCase().Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InactiveStaffExcluded(t *testing.T) {
	f := newFixture(t)
	f.staff[0].IsActive = false

	resp, err := f.useCase().Execute(context.Background(), f.request())

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoOpeningHoursYieldsEmpty(t *testing.T) {
	f := newFixture(t)
	// Request a Monday; the fixture only has Wednesday hours.
	f.date = time.Date(2026, 9, 7, 0, 0, 0, 0, f.loc)

	resp, err := f.useCase().Execute(context.Background(), f.request())

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_MultipleStaffSortedByStartThenStaff(t *testing.T) {
	f := newFixture(t)
	other := uuid.New()
	f.staff = append(f.staff, &domain.StaffMember{ID: other, SalonID: f.salonID, Name: "Noor", IsActive: true})
	f.hours = append(f.hours, &domain.OpeningHour{
		ID: uuid.New(), StaffID: other, Weekday: 3,
		StartTime: types.TimeString("09:00"), EndTime: types.TimeString("12:00"),
	})

	resp, err := f.useCase().Execute(context.Background(), f.request())

	require.NoError(t, err)
	require.Len(t, resp.Slots, 18)
	for i := 1; i < len(resp.Slots); i++ {
		prev, cur := resp.Slots[i-1], resp.Slots[i]
		ordered := prev.StartAt.Before(cur.StartAt) ||
			(prev.StartAt.Equal(cur.StartAt) && prev.StaffID.String() < cur.StaffID.String())
		assert.True(t, ordered, "slots out of order at index %d", i)
	}
}

func TestExecute_InactiveSalon(t *testing.T) {
	f := newFixture(t)
	f.salon.Status = domain.SalonStatusPending

	_, err := f.useCase().Execute(context.Background(), f.request())

	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_ServiceOfOtherSalon(t *testing.T) {
	f := newFixture(t)
	f.service.SalonID = uuid.New()

	_, err := f.useCase().Execute(context.Background(), f.request())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveService(t *testing.T) {
	f := newFixture(t)
	f.service.IsActive = false

	_, err := f.useCase().Execute(context.Background(), f.request())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ZeroFootprintService(t *testing.T) {
	f := newFixture(t)
	f.service.DurationMinutes = 0
	f.service.BufferMinutes = 0

	_, err := f.useCase().Execute(context.Background(), f.request())

	assert.ErrorIs(t, err, ErrInvalidService)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing salon", &Request{ServiceID: f.serviceID, Date: f.date}},
		{"missing service", &Request{SalonID: f.salonID, Date: f.date}},
		{"missing date", &Request{SalonID: f.salonID, ServiceID: f.serviceID}},
		{"empty staff filter", &Request{SalonID: f.salonID, ServiceID: f.serviceID, Date: f.date, StaffID: ptr.Ptr(uuid.Nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.useCase().Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_Idempotent(t *testing.T) {
	f := newFixture(t)
	uc := f.useCase()

	first, err := uc.Execute(context.Background(), f.request())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), f.request())
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}
