// Package booking stores bookings. Reads that feed an overlap decision take
// row locks when running inside a transaction, and the schema carries an
// exclusion constraint on active bookings as the last line of defence.
package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/pkg/dbmetrics"
	"github.com/salonplein/booking-platform/pkg/psqlbuilder"
)

// Postgres error code for exclusion_violation.
const pqExclusionViolation = "23P01"

var bookingColumns = []string{
	"id", "user_id", "salon_id", "staff_id", "service_id",
	"start_at", "end_at", "price_cents", "status", "created_at", "updated_at",
}

// Repository stores bookings.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a booking. An exclusion-constraint violation maps to
// ErrOverlapConstraint so callers can report a slot conflict.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("user_id", "salon_id", "staff_id", "service_id", "start_at", "end_at", "price_cents", "status").
		Values(b.UserID, b.SalonID, b.StaffID, b.ServiceID, b.StartAt, b.EndAt, b.PriceCents, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqExclusionViolation {
			return nil, fmt.Errorf("%w: Create - %v", ErrOverlapConstraint, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID fetches a booking by id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID, &b.UserID, &b.SalonID, &b.StaffID, &b.ServiceID,
		&b.StartAt, &b.EndAt, &b.PriceCents, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return &b, nil
}

// ListByUserID fetches the bookings of a user, soonest first.
func (r *Repository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListBySalonIDs fetches the bookings of the given salons, soonest first.
func (r *Repository) ListBySalonIDs(ctx context.Context, salonIDs []uuid.UUID) ([]*domain.Booking, error) {
	if len(salonIDs) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"salon_id": salonIDs}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalonIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalonIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListActiveOverlapping fetches non-cancelled bookings of the given staff that
// intersect the half-open window [from, to). Inside a transaction the rows are
// locked FOR UPDATE so the overlap decision holds until commit.
func (r *Repository) ListActiveOverlapping(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*domain.Booking, error) {
	if len(staffIDs) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"staff_id": staffIDs}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		OrderBy("start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus sets the status of a booking and bumps updated_at.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountAll counts every booking regardless of status.
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("bookings").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountAll - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountAll - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByStatus counts bookings in the given status.
func (r *Repository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"status": status}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CategoryRevenue is the aggregated revenue of one service category.
type CategoryRevenue struct {
	Category     string
	Bookings     int64
	RevenueCents int64
}

// RevenueByCategory sums the revenue of non-cancelled bookings per service
// category, highest revenue first.
func (r *Repository) RevenueByCategory(ctx context.Context) ([]CategoryRevenue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COALESCE(s.category, '') AS category",
		"COUNT(b.id) AS bookings",
		"COALESCE(SUM(b.price_cents), 0) AS revenue_cents",
	).
		From("bookings b").
		Join("services s ON s.id = b.service_id").
		Where(squirrel.NotEq{"b.status": domain.StatusCancelled}).
		GroupBy("s.category").
		OrderBy("revenue_cents DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: RevenueByCategory - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: RevenueByCategory - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	revenues := make([]CategoryRevenue, 0)
	for rows.Next() {
		var rev CategoryRevenue
		if err := rows.Scan(&rev.Category, &rev.Bookings, &rev.RevenueCents); err != nil {
			return nil, fmt.Errorf("%w: RevenueByCategory - scan row: %v", ErrScanRow, err)
		}
		revenues = append(revenues, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: RevenueByCategory - rows error: %v", ErrScanRow, err)
	}

	return revenues, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(
			&b.ID, &b.UserID, &b.SalonID, &b.StaffID, &b.ServiceID,
			&b.StartAt, &b.EndAt, &b.PriceCents, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
