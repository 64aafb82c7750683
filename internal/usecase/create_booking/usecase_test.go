package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonplein/booking-platform/internal/domain"
	bookingRepo "github.com/salonplein/booking-platform/internal/infra/storage/booking"
	dealRepo "github.com/salonplein/booking-platform/internal/infra/storage/deal"
	userRepo "github.com/salonplein/booking-platform/internal/infra/storage/user"
	"github.com/salonplein/booking-platform/pkg/ptr"
)

type salonRepoMock struct {
	getByID func(ctx context.Context, id uuid.UUID) (*domain.Salon, error)
}

func (m *salonRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error) {
	return m.getByID(ctx, id)
}

type catalogRepoMock struct {
	getServiceByID  func(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	isStaffEligible func(ctx context.Context, serviceID, staffID uuid.UUID) (bool, error)
}

func (m *catalogRepoMock) GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	return m.getServiceByID(ctx, id)
}

func (m *catalogRepoMock) IsStaffEligible(ctx context.Context, serviceID, staffID uuid.UUID) (bool, error) {
	return m.isStaffEligible(ctx, serviceID, staffID)
}

type staffRepoMock struct {
	getByID func(ctx context.Context, id uuid.UUID) (*domain.StaffMember, error)
}

func (m *staffRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffMember, error) {
	return m.getByID(ctx, id)
}

type bookingRepoMock struct {
	listActiveOverlapping func(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*domain.Booking, error)
	create                func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

func (m *bookingRepoMock) ListActiveOverlapping(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*domain.Booking, error) {
	return m.listActiveOverlapping(ctx, staffIDs, from, to)
}

func (m *bookingRepoMock) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	return m.create(ctx, b)
}

type dealRepoMock struct {
	getByID   func(ctx context.Context, id uuid.UUID) (*domain.Deal, error)
	setActive func(ctx context.Context, id uuid.UUID, isActive bool) error
}

func (m *dealRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	return m.getByID(ctx, id)
}

func (m *dealRepoMock) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	return m.setActive(ctx, id, isActive)
}

type userRepoMock struct {
	getByID func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	upsert  func(ctx context.Context, u *domain.User) (*domain.User, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.getByID(ctx, id)
}

func (m *userRepoMock) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	return m.upsert(ctx, u)
}

// passthroughTxManager runs the function directly; transaction semantics are
// covered by the repository and txmanager tests.
type passthroughTxManager struct{}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
	userID    uuid.UUID
	salonID   uuid.UUID
	serviceID uuid.UUID
	staffID   uuid.UUID
	dealID    uuid.UUID

	salon     *domain.Salon
	service   *domain.Service
	staff     *domain.StaffMember
	deal      *domain.Deal
	user      *domain.User
	competing []*domain.Booking

	eligible        bool
	deactivatedDeal *uuid.UUID
	createdBooking  *domain.Booking
	createErr       error

	now     time.Time
	startAt time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)

	f := &fixture{
		userID:    uuid.New(),
		salonID:   uuid.New(),
		serviceID: uuid.New(),
		staffID:   uuid.New(),
		dealID:    uuid.New(),
		eligible:  true,
	}

	f.now = time.Date(2026, 9, 1, 10, 0, 0, 0, loc)
	f.startAt = time.Date(2026, 9, 9, 10, 0, 0, 0, loc)

	f.salon = &domain.Salon{ID: f.salonID, Status: domain.SalonStatusActive, Timezone: "Europe/Amsterdam"}
	f.service = &domain.Service{
		ID:              f.serviceID,
		SalonID:         f.salonID,
		DurationMinutes: 45,
		BufferMinutes:   15,
		PriceCents:      4500,
		IsActive:        true,
	}
	f.staff = &domain.StaffMember{ID: f.staffID, SalonID: f.salonID, Name: "Emma", IsActive: true}
	f.deal = &domain.Deal{
		ID:                   f.dealID,
		SalonID:              f.salonID,
		ServiceID:            f.serviceID,
		StaffID:              f.staffID,
		StartAt:              f.startAt,
		DiscountedPriceCents: 2950,
		ExpiresAt:            f.startAt,
		IsActive:             true,
	}
	f.user = &domain.User{ID: f.userID, Role: domain.RoleCustomer}
	f.competing = []*domain.Booking{}

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
			isStaffEligible: func(ctx context.Context, serviceID, staffID uuid.UUID) (bool, error) {
				return f.eligible, nil
			},
		},
		&staffRepoMock{getByID: func(ctx context.Context, id uuid.UUID) (*domain.StaffMember, error) {
			return f.staff, nil
		}},
		&bookingRepoMock{
			listActiveOverlapping: func(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*domain.Booking, error) {
				return f.competing, nil
			},
			create: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
				if f.createErr != nil {
					return nil, f.createErr
				}
				b.ID = uuid.New()
				b.CreatedAt = f.now
				b.UpdatedAt = f.now
				f.createdBooking = b
				return b, nil
			},
		},
		&dealRepoMock{
			getByID: func(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
				if f.deal == nil || f.deal.ID != id {
					return nil, dealRepo.ErrDealNotFound
				}
				return f.deal, nil
			},
			setActive: func(ctx context.Context, id uuid.UUID, isActive bool) error {
				if !isActive {
					f.deactivatedDeal = &id
				}
				return nil
			},
		},
		&userRepoMock{
			getByID: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
				if f.user == nil {
					return nil, userRepo.ErrUserNotFound
				}
				return f.user, nil
			},
			upsert: func(ctx context.Context, u *domain.User) (*domain.User, error) {
				f.user = u
				return u, nil
			},
		},
		&passthroughTxManager{},
		&noopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: f.now}
	return uc
}

func (f *fixture) request() *Request {
	return &Request{
		UserID:    f.userID,
		SalonID:   f.salonID,
		ServiceID: f.serviceID,
		StaffID:   f.staffID,
		StartAt:   f.startAt,
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	f := newFixture(t)

	resp, err := f.useCase().Execute(context.Background(), f.request())

	require.NoError(t, err)
	assert.Equal(t, f.startAt, resp.StartAt)
	// End is start plus duration plus buffer.
	assert.Equal(t, f.startAt.Add(60*time.Minute), resp.EndAt)
	assert.Equal(t, int64(4500), resp.PriceCents)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	assert.Nil(t, f.deactivatedDeal)
}

func TestExecute_OverlapConflict(t *testing.T) {
	f := newFixture(t)
	f.competing = []*domain.Booking{{
		ID:      uuid.New(),
		StaffID: f.staffID,
		StartAt: f.startAt.Add(30 * time.Minute),
		EndAt:   f.startAt.Add(90 * time.Minute),
		Status:  domain.StatusBooked,
	}}

	_, err := f.useCase().Execute(context.Background(), f.request())

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, f.createdBooking)
}

func TestExecute_BoundaryTouchingIsNotAConflict(t *testing.T) {
	f := newFixture(t)
	// Ends exactly at the requested start.
	f.competing = []*domain.Booking{{
		ID:      uuid.New(),
		StaffID: f.staffID,
		StartAt: f.startAt.Add(-60 * time.Minute),
		EndAt:   f.startAt,
		Status:  domain.StatusBooked,
	}}

	_, err := f.useCase().Execute(context.Background(), f.request())

	assert.NoError(t, err)
}

func TestExecute_ExclusionConstraintMapsToConflict(t *testing.T) {
	f := newFixture(t)
	f.createErr = bookingRepo.ErrOverlapConstraint

	_, err := f.useCase().Execute(context.Background(), f.request())

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_DealRedemption(t *testing.T) {
	f := newFixture(t)
	req := f.request()
	req.DealID = &f.dealID

	resp, err := f.useCase().Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(2950), resp.PriceCents)
	require.NotNil(t, f.deactivatedDeal)
	assert.Equal(t, f.dealID, *f.deactivatedDeal)
}

func TestExecute_DealValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *fixture)
	}{
		{"unknown deal", func(f *fixture) { f.deal = nil }},
		{"inactive deal", func(f *fixture) { f.deal.IsActive = false }},
		{"expired deal", func(f *fixture) { f.deal.ExpiresAt = f.now.Add(-time.Hour) }},
		{"other service", func(f *fixture) { f.deal.ServiceID = uuid.New() }},
		{"other staff", func(f *fixture) { f.deal.StaffID = uuid.New() }},
		{"other start", func(f *fixture) { f.deal.StartAt = f.startAt.Add(15 * time.Minute) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mutate(f)

			req := f.request()
			req.DealID = &f.dealID

			_, err := f.useCase().Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidDeal)
			assert.Nil(t, f.createdBooking)
		})
	}
}

func TestExecute_StartInPast(t *testing.T) {
	f := newFixture(t)
	req := f.request()
	req.StartAt = f.now.Add(-time.Minute)

	_, err := f.useCase().Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrStartInPast)
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

func TestExecute_StaffOfOtherSalon(t *testing.T) {
	f := newFixture(t)
	f.staff.SalonID = uuid.New()

	_, err := f.useCase().Execute(context.Background(), f.request())

	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_InactiveStaff(t *testing.T) {
	f := newFixture(t)
	f.staff.IsActive = false

	_, err := f.useCase().Execute(context.Background(), f.request())

	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_IneligibleStaff(t *testing.T) {
	f := newFixture(t)
	f.eligible = false

	_, err := f.useCase().Execute(context.Background(), f.request())

	assert.ErrorIs(t, err, ErrStaffNotEligible)
}

func TestExecute_CreatesMissingUserProfile(t *testing.T) {
	f := newFixture(t)
	f.user = nil

	_, err := f.useCase().Execute(context.Background(), f.request())

	require.NoError(t, err)
	require.NotNil(t, f.user)
	assert.Equal(t, f.userID, f.user.ID)
	assert.Equal(t, domain.RoleCustomer, f.user.Role)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing user", &Request{SalonID: f.salonID, ServiceID: f.serviceID, StaffID: f.staffID, StartAt: f.startAt}},
		{"missing salon", &Request{UserID: f.userID, ServiceID: f.serviceID, StaffID: f.staffID, StartAt: f.startAt}},
		{"missing service", &Request{UserID: f.userID, SalonID: f.salonID, StaffID: f.staffID, StartAt: f.startAt}},
		{"missing staff", &Request{UserID: f.userID, SalonID: f.salonID, ServiceID: f.serviceID, StartAt: f.startAt}},
		{"missing start", &Request{UserID: f.userID, SalonID: f.salonID, ServiceID: f.serviceID, StaffID: f.staffID}},
		{"empty deal", &Request{UserID: f.userID, SalonID: f.salonID, ServiceID: f.serviceID, StaffID: f.staffID, StartAt: f.startAt, DealID: ptr.Ptr(uuid.Nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.useCase().Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
