// Package schedule stores opening hours and blocked times for staff members.
package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/pkg/dbmetrics"
	"github.com/salonplein/booking-platform/pkg/psqlbuilder"
)

var (
	openingHourColumns = []string{"id", "staff_id", "weekday", "start_time", "end_time"}
	blockedTimeColumns = []string{"id", "staff_id", "start_at", "end_at", "reason"}
)

// Repository stores staff schedules.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a schedule repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ReplaceOpeningHours swaps all intervals of one (staff, weekday) pair for the
// given set. Run it inside a transaction so readers never observe the gap
// between the delete and the inserts.
func (r *Repository) ReplaceOpeningHours(ctx context.Context, staffID uuid.UUID, weekday int, hours []*domain.OpeningHour) ([]*domain.OpeningHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("opening_hours").
		Where(squirrel.Eq{"staff_id": staffID, "weekday": weekday}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceOpeningHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceOpeningHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return []*domain.OpeningHour{}, nil
	}

	insertBuilder := psqlbuilder.Insert("opening_hours").
		Columns("staff_id", "weekday", "start_time", "end_time")
	for _, h := range hours {
		insertBuilder = insertBuilder.Values(staffID, weekday, h.StartTime, h.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.
		Suffix("RETURNING " + strings.Join(openingHourColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceOpeningHours - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, insertQuery, insertArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceOpeningHours - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOpeningHours(rows)
}

// ListOpeningHours fetches intervals of the given staff for one weekday.
func (r *Repository) ListOpeningHours(ctx context.Context, staffIDs []uuid.UUID, weekday int) ([]*domain.OpeningHour, error) {
	if len(staffIDs) == 0 {
		return []*domain.OpeningHour{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(openingHourColumns...).
		From("opening_hours").
		Where(squirrel.Eq{"staff_id": staffIDs, "weekday": weekday}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOpeningHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOpeningHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOpeningHours(rows)
}

// ListOpeningHoursByStaffIDs fetches every interval of the given staff,
// ordered by weekday and start time.
func (r *Repository) ListOpeningHoursByStaffIDs(ctx context.Context, staffIDs []uuid.UUID) ([]*domain.OpeningHour, error) {
	if len(staffIDs) == 0 {
		return []*domain.OpeningHour{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(openingHourColumns...).
		From("opening_hours").
		Where(squirrel.Eq{"staff_id": staffIDs}).
		OrderBy("weekday ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOpeningHoursByStaffIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOpeningHoursByStaffIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOpeningHours(rows)
}

// CreateBlock inserts a blocked time.
func (r *Repository) CreateBlock(ctx context.Context, b *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_times").
		Columns("staff_id", "start_at", "end_at", "reason").
		Values(b.StaffID, b.StartAt, b.EndAt, b.Reason).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlock - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateBlock - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetBlockByID fetches a blocked time by id.
func (r *Repository) GetBlockByID(ctx context.Context, id uuid.UUID) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedTimeColumns...).
		From("blocked_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.BlockedTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID, &b.StaffID, &b.StartAt, &b.EndAt, &b.Reason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockByID - scan blocked time: %v", ErrScanRow, err)
	}

	return &b, nil
}

// DeleteBlock removes a blocked time.
func (r *Repository) DeleteBlock(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlock - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlock - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlock - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// ListBlocksByStaffIDs fetches all blocked times of the given staff, soonest first.
func (r *Repository) ListBlocksByStaffIDs(ctx context.Context, staffIDs []uuid.UUID) ([]*domain.BlockedTime, error) {
	if len(staffIDs) == 0 {
		return []*domain.BlockedTime{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedTimeColumns...).
		From("blocked_times").
		Where(squirrel.Eq{"staff_id": staffIDs}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocksByStaffIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocksByStaffIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlockedTimes(rows)
}

// ListBlocksOverlapping fetches blocked times of the given staff that
// intersect the half-open window [from, to).
func (r *Repository) ListBlocksOverlapping(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*domain.BlockedTime, error) {
	if len(staffIDs) == 0 {
		return []*domain.BlockedTime{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedTimeColumns...).
		From("blocked_times").
		Where(squirrel.Eq{"staff_id": staffIDs}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocksOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocksOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlockedTimes(rows)
}

func (r *Repository) scanOpeningHours(rows *sql.Rows) ([]*domain.OpeningHour, error) {
	hours := make([]*domain.OpeningHour, 0)

	for rows.Next() {
		var h domain.OpeningHour
		if err := rows.Scan(&h.ID, &h.StaffID, &h.Weekday, &h.StartTime, &h.EndTime); err != nil {
			return nil, fmt.Errorf("%w: scanOpeningHours - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOpeningHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

func (r *Repository) scanBlockedTimes(rows *sql.Rows) ([]*domain.BlockedTime, error) {
	blocks := make([]*domain.BlockedTime, 0)

	for rows.Next() {
		var b domain.BlockedTime
		if err := rows.Scan(&b.ID, &b.StaffID, &b.StartAt, &b.EndAt, &b.Reason); err != nil {
			return nil, fmt.Errorf("%w: scanBlockedTimes - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlockedTimes - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
