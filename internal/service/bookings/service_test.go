package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonplein/booking-platform/internal/domain"
	catalogRepo "github.com/salonplein/booking-platform/internal/infra/storage/catalog"
)

type bookingRepoMock struct {
	getByID      func(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	listByUserID func(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error)
	listBySalons func(ctx context.Context, salonIDs []uuid.UUID) ([]*domain.Booking, error)
	updateStatus func(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
}

func (m *bookingRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return m.getByID(ctx, id)
}

func (m *bookingRepoMock) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	return m.listByUserID(ctx, userID)
}

func (m *bookingRepoMock) ListBySalonIDs(ctx context.Context, salonIDs []uuid.UUID) ([]*domain.Booking, error) {
	return m.listBySalons(ctx, salonIDs)
}

func (m *bookingRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	return m.updateStatus(ctx, id, status)
}

type catalogRepoMock struct {
	getServiceByID func(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

func (m *catalogRepoMock) GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	return m.getServiceByID(ctx, id)
}

type salonRepoMock struct {
	getByID func(ctx context.Context, id uuid.UUID) (*domain.Salon, error)
}

func (m *salonRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error) {
	return m.getByID(ctx, id)
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
	bookingID uuid.UUID
	serviceID uuid.UUID

	booking *domain.Booking
	service *domain.Service

	cancelled *uuid.UUID
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		userID:    uuid.New(),
		bookingID: uuid.New(),
		serviceID: uuid.New(),
		now:       time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}

	// Booking starts in 48 hours; the service requires 24 hours notice.
	f.booking = &domain.Booking{
		ID:        f.bookingID,
		UserID:    f.userID,
		ServiceID: f.serviceID,
		StartAt:   f.now.Add(48 * time.Hour),
		EndAt:     f.now.Add(49 * time.Hour),
		Status:    domain.StatusBooked,
	}
	f.service = &domain.Service{
		ID:               f.serviceID,
		CancelUntilHours: 24,
	}

	return f
}

func (f *fixture) svc() *Service {
	svc := NewService(
		&bookingRepoMock{
			getByID: func(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
				return f.booking, nil
			},
			listByUserID: func(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
				return []*domain.Booking{f.booking}, nil
			},
			listBySalons: func(ctx context.Context, salonIDs []uuid.UUID) ([]*domain.Booking, error) {
				return []*domain.Booking{f.booking}, nil
			},
			updateStatus: func(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
				if status == domain.StatusCancelled {
					f.cancelled = &id
				}
				return nil
			},
		},
		&catalogRepoMock{getServiceByID: func(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
			if f.service == nil {
				return nil, catalogRepo.ErrServiceNotFound
			}
			return f.service, nil
		}},
		&salonRepoMock{getByID: func(ctx context.Context, id uuid.UUID) (*domain.Salon, error) {
			return nil, nil
		}},
		&noopLogger{},
	)
	svc.timeProvider = &fixedTimeProvider{now: f.now}
	return svc
}

func TestCancel_WithinNotice(t *testing.T) {
	f := newFixture(t)

	booking, err := f.svc().Cancel(context.Background(), f.userID, f.bookingID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, booking.Status)
	require.NotNil(t, f.cancelled)
	assert.Equal(t, f.bookingID, *f.cancelled)
}

func TestCancel_DeadlinePassed(t *testing.T) {
	f := newFixture(t)
	// Less than 24 hours of notice left.
	f.booking.StartAt = f.now.Add(23 * time.Hour)

	_, err := f.svc().Cancel(context.Background(), f.userID, f.bookingID)

	assert.ErrorIs(t, err, ErrCancelDeadlinePassed)
	assert.Nil(t, f.cancelled)
}

func TestCancel_ExactlyAtDeadline(t *testing.T) {
	f := newFixture(t)
	// Exactly 24 hours of notice is still allowed.
	f.booking.StartAt = f.now.Add(24 * time.Hour)

	_, err := f.svc().Cancel(context.Background(), f.userID, f.bookingID)

	assert.NoError(t, err)
}

func TestCancel_NotOwner(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc().Cancel(context.Background(), uuid.New(), f.bookingID)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	f := newFixture(t)
	f.booking.Status = domain.StatusCancelled

	_, err := f.svc().Cancel(context.Background(), f.userID, f.bookingID)

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_MissingServiceFallsBackToDefaultNotice(t *testing.T) {
	f := newFixture(t)
	f.service = nil
	// 30 hours of notice beats the 24-hour default.
	f.booking.StartAt = f.now.Add(30 * time.Hour)

	_, err := f.svc().Cancel(context.Background(), f.userID, f.bookingID)

	assert.NoError(t, err)
}

func TestGetMine_NotOwner(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc().GetMine(context.Background(), uuid.New(), f.bookingID)

	assert.ErrorIs(t, err, ErrAccessDenied)
}
