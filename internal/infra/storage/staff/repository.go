package staff

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

var staffColumns = []string{"id", "salon_id", "name", "is_active", "created_at"}

// Repository stores staff members.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a staff repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new staff member.
func (r *Repository) Create(ctx context.Context, m *domain.StaffMember) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_members").
		Columns("salon_id", "name", "is_active").
		Values(m.SalonID, m.Name, m.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return m, nil
}

// GetByID fetches a staff member by id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.StaffMember
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID, &m.SalonID, &m.Name, &m.IsActive, &m.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff member: %v", ErrScanRow, err)
	}

	return &m, nil
}

// ListBySalonIDs fetches staff for the given salons, newest first.
func (r *Repository) ListBySalonIDs(ctx context.Context, salonIDs []uuid.UUID) ([]*domain.StaffMember, error) {
	if len(salonIDs) == 0 {
		return []*domain.StaffMember{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"salon_id": salonIDs}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalonIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalonIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanStaff(rows)
}

// ListByIDs fetches staff members by id, preserving no particular order.
func (r *Repository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.StaffMember, error) {
	if len(ids) == 0 {
		return []*domain.StaffMember{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanStaff(rows)
}

// Update applies the non-nil fields to a staff member.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, name *string, isActive *bool) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("staff_members").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, salon_id, name, is_active, created_at")

	if name != nil {
		updateBuilder = updateBuilder.Set("name", *name)
	}
	if isActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *isActive)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var m domain.StaffMember
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID, &m.SalonID, &m.Name, &m.IsActive, &m.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan staff member: %v", ErrScanRow, err)
	}

	return &m, nil
}

func (r *Repository) scanStaff(rows *sql.Rows) ([]*domain.StaffMember, error) {
	members := make([]*domain.StaffMember, 0)

	for rows.Next() {
		var m domain.StaffMember
		if err := rows.Scan(&m.ID, &m.SalonID, &m.Name, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanStaff - scan row: %v", ErrScanRow, err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanStaff - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}
