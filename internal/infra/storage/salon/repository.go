package salon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/pkg/dbmetrics"
	"github.com/salonplein/booking-platform/pkg/psqlbuilder"
)

var salonColumnList = []string{
	"id", "owner_id", "name", "city", "address", "postcode", "description", "status", "timezone", "created_at",
}

// Repository stores salons.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a salon repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new salon and returns it with generated fields populated.
func (r *Repository) Create(ctx context.Context, s *domain.Salon) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salons").
		Columns("owner_id", "name", "city", "address", "postcode", "description", "status", "timezone").
		Values(s.OwnerID, s.Name, s.City, s.Address, s.Postcode, s.Description, s.Status, s.Timezone).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID fetches a salon by id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(salonColumnList...).
		From("salons").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Salon
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.City, &s.Address, &s.Postcode,
		&s.Description, &s.Status, &s.Timezone, &s.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan salon: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListByOwnerID fetches every salon owned by the given user, newest first.
func (r *Repository) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(salonColumnList...).
		From("salons").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwnerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwnerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSalons(rows)
}

// SearchFilter controls Search.
type SearchFilter struct {
	City   *string
	Status *domain.SalonStatus
	Limit  uint64
}

// Search lists salons, optionally filtered by city and status.
func (r *Repository) Search(ctx context.Context, filter SearchFilter) ([]*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(salonColumnList...).
		From("salons").
		OrderBy("created_at DESC")

	if filter.City != nil {
		selectBuilder = selectBuilder.Where("LOWER(city) = LOWER(?)", *filter.City)
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSalons(rows)
}

// UpdateStatus sets the moderation status of a salon.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SalonStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("salons").
		Set("status", status).
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
		return ErrSalonNotFound
	}

	return nil
}

// Delete removes a salon. Dependent rows cascade at the schema level.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("salons").
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
		return ErrSalonNotFound
	}

	return nil
}

// CountByStatus counts salons in the given moderation status.
func (r *Repository) CountByStatus(ctx context.Context, status domain.SalonStatus) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("salons").
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

func (r *Repository) scanSalons(rows *sql.Rows) ([]*domain.Salon, error) {
	salons := make([]*domain.Salon, 0)

	for rows.Next() {
		var s domain.Salon
		err := rows.Scan(
			&s.ID, &s.OwnerID, &s.Name, &s.City, &s.Address, &s.Postcode,
			&s.Description, &s.Status, &s.Timezone, &s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSalons - scan row: %v", ErrScanRow, err)
		}
		salons = append(salons, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSalons - rows error: %v", ErrScanRow, err)
	}

	return salons, nil
}
