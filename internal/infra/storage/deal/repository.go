// Package deal stores one-shot discounted slots. A deal is consumed at
// booking time, so the read that validates it takes a row lock inside the
// booking transaction.
package deal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/pkg/dbmetrics"
	"github.com/salonplein/booking-platform/pkg/psqlbuilder"
)

var dealColumns = []string{
	"id", "salon_id", "service_id", "staff_id", "start_at", "end_at",
	"discounted_price_cents", "expires_at", "is_active", "created_at",
}

// Repository stores deals.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a deal repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a deal.
func (r *Repository) Create(ctx context.Context, d *domain.Deal) (*domain.Deal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("deals").
		Columns("salon_id", "service_id", "staff_id", "start_at", "end_at",
			"discounted_price_cents", "expires_at", "is_active").
		Values(d.SalonID, d.ServiceID, d.StaffID, d.StartAt, d.EndAt,
			d.DiscountedPriceCents, d.ExpiresAt, d.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return d, nil
}

// GetByID fetches a deal by id. Inside a transaction the row is locked
// FOR UPDATE so a concurrent redemption waits for this one to finish.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(dealColumns...).
		From("deals").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.Deal
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID, &d.SalonID, &d.ServiceID, &d.StaffID, &d.StartAt, &d.EndAt,
		&d.DiscountedPriceCents, &d.ExpiresAt, &d.IsActive, &d.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan deal: %v", ErrScanRow, err)
	}

	return &d, nil
}

// ListBySalonIDs fetches every deal of the given salons, soonest slot first.
func (r *Repository) ListBySalonIDs(ctx context.Context, salonIDs []uuid.UUID) ([]*domain.Deal, error) {
	if len(salonIDs) == 0 {
		return []*domain.Deal{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dealColumns...).
		From("deals").
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

	return r.scanDeals(rows)
}

// ListActivePublic fetches the active, unexpired deals whose slot has not
// passed yet, soonest first.
func (r *Repository) ListActivePublic(ctx context.Context, now time.Time) ([]*domain.Deal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dealColumns...).
		From("deals").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Gt{"expires_at": now}).
		Where(squirrel.Gt{"start_at": now}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActivePublic - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActivePublic - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDeals(rows)
}

// SetActive flips the is_active flag of a deal. Redemption uses it to retire
// a deal inside the booking transaction.
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("deals").
		Set("is_active", isActive).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrDealNotFound
	}

	return nil
}

// Delete removes a deal.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("deals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrDealNotFound
	}

	return nil
}

func (r *Repository) scanDeals(rows *sql.Rows) ([]*domain.Deal, error) {
	deals := make([]*domain.Deal, 0)

	for rows.Next() {
		var d domain.Deal
		err := rows.Scan(
			&d.ID, &d.SalonID, &d.ServiceID, &d.StaffID, &d.StartAt, &d.EndAt,
			&d.DiscountedPriceCents, &d.ExpiresAt, &d.IsActive, &d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDeals - scan row: %v", ErrScanRow, err)
		}
		deals = append(deals, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDeals - rows error: %v", ErrScanRow, err)
	}

	return deals, nil
}
