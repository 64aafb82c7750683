package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/internal/infra/storage/booking"
)

var bookingColumns = []string{
	"id", "user_id", "salon_id", "staff_id", "service_id",
	"start_at", "end_at", "price_cents", "status", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*booking.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return booking.NewRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2026, 9, 9, 10, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		UserID:     uuid.New(),
		SalonID:    uuid.New(),
		StaffID:    uuid.New(),
		ServiceID:  uuid.New(),
		StartAt:    start,
		EndAt:      start.Add(45 * time.Minute),
		PriceCents: 4500,
		Status:     domain.StatusBooked,
	}

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(id, now, now))

	created, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, int64(4500), created.PriceCents)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExclusionViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23P01", Message: "conflicting key value violates exclusion constraint \"bookings_no_overlap\""})

	_, err := repo.Create(context.Background(), &domain.Booking{Status: domain.StatusBooked})
	assert.ErrorIs(t, err, booking.ErrOverlapConstraint)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	start := time.Date(2026, 9, 9, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(bookingColumns).AddRow(
		id, uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		start, start.Add(30*time.Minute), int64(2500), "booked", time.Now(), time.Now(),
	)

	mock.ExpectQuery("SELECT .+ FROM bookings WHERE id =").
		WithArgs(id).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, domain.StatusBooked, got.Status)
	assert.True(t, got.StartAt.Equal(start))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM bookings WHERE id =").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveOverlapping(t *testing.T) {
	repo, mock := newMockRepo(t)

	staffID := uuid.New()
	from := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	rows := sqlmock.NewRows(bookingColumns).AddRow(
		uuid.New(), uuid.New(), uuid.New(), staffID, uuid.New(),
		from.Add(10*time.Hour), from.Add(11*time.Hour), int64(3000), "booked", time.Now(), time.Now(),
	)

	mock.ExpectQuery("SELECT .+ FROM bookings WHERE staff_id IN").
		WillReturnRows(rows)

	list, err := repo.ListActiveOverlapping(context.Background(), []uuid.UUID{staffID}, from, to)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, staffID, list[0].StaffID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveOverlapping_NoStaff(t *testing.T) {
	repo, mock := newMockRepo(t)

	// No staff ids means no query at all.
	list, err := repo.ListActiveOverlapping(context.Background(), nil, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	mock.ExpectExec("UPDATE bookings SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, domain.StatusCancelled)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE bookings SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusCancelled)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := repo.CountByStatus(context.Background(), domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueByCategory(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"category", "bookings", "revenue_cents"}).
		AddRow("kapper", int64(12), int64(54000)).
		AddRow("nagels", int64(4), int64(14000))

	mock.ExpectQuery("FROM bookings b JOIN services s").
		WillReturnRows(rows)

	revenues, err := repo.RevenueByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, revenues, 2)
	assert.Equal(t, "kapper", revenues[0].Category)
	assert.Equal(t, int64(54000), revenues[0].RevenueCents)

	require.NoError(t, mock.ExpectationsWereMet())
}
