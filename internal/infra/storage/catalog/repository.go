// Package catalog stores services and the service-to-staff eligibility links.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/pkg/dbmetrics"
	"github.com/salonplein/booking-platform/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id", "salon_id", "name", "category", "duration_minutes", "buffer_minutes",
	"price_cents", "cancel_until_hours", "is_active", "created_at",
}

// Repository stores the service catalog.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a catalog repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateService inserts a new service.
func (r *Repository) CreateService(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("salon_id", "name", "category", "duration_minutes", "buffer_minutes",
			"price_cents", "cancel_until_hours", "is_active").
		Values(s.SalonID, s.Name, s.Category, s.DurationMinutes, s.BufferMinutes,
			s.PriceCents, s.CancelUntilHours, s.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetServiceByID fetches a service by id.
func (r *Repository) GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.SalonID, &s.Name, &s.Category, &s.DurationMinutes, &s.BufferMinutes,
		&s.PriceCents, &s.CancelUntilHours, &s.IsActive, &s.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListServicesBySalonIDs fetches services for the given salons, name-ascending.
func (r *Repository) ListServicesBySalonIDs(ctx context.Context, salonIDs []uuid.UUID) ([]*domain.Service, error) {
	if len(salonIDs) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"salon_id": salonIDs}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServicesBySalonIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServicesBySalonIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

// UpdateService applies the non-nil fields to a service.
func (r *Repository) UpdateService(ctx context.Context, id uuid.UUID, upd ServiceUpdate) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("services").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(serviceColumns, ", "))

	if upd.Name != nil {
		updateBuilder = updateBuilder.Set("name", *upd.Name)
	}
	if upd.Category != nil {
		updateBuilder = updateBuilder.Set("category", *upd.Category)
	}
	if upd.DurationMinutes != nil {
		updateBuilder = updateBuilder.Set("duration_minutes", *upd.DurationMinutes)
	}
	if upd.BufferMinutes != nil {
		updateBuilder = updateBuilder.Set("buffer_minutes", *upd.BufferMinutes)
	}
	if upd.PriceCents != nil {
		updateBuilder = updateBuilder.Set("price_cents", *upd.PriceCents)
	}
	if upd.CancelUntilHours != nil {
		updateBuilder = updateBuilder.Set("cancel_until_hours", *upd.CancelUntilHours)
	}
	if upd.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *upd.IsActive)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateService - build update query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.SalonID, &s.Name, &s.Category, &s.DurationMinutes, &s.BufferMinutes,
		&s.PriceCents, &s.CancelUntilHours, &s.IsActive, &s.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateService - scan service: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ServiceUpdate carries the optional fields of UpdateService.
type ServiceUpdate struct {
	Name             *string
	Category         *string
	DurationMinutes  *int
	BufferMinutes    *int
	PriceCents       *int64
	CancelUntilHours *int
	IsActive         *bool
}

// LinkStaff marks a staff member as eligible for a service. Idempotent.
func (r *Repository) LinkStaff(ctx context.Context, serviceID, staffID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("service_staff").
		Columns("service_id", "staff_id").
		Values(serviceID, staffID).
		Suffix("ON CONFLICT (service_id, staff_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LinkStaff - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LinkStaff - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// UnlinkStaff removes a staff member's eligibility for a service.
func (r *Repository) UnlinkStaff(ctx context.Context, serviceID, staffID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("service_staff").
		Where(squirrel.Eq{"service_id": serviceID, "staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UnlinkStaff - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UnlinkStaff - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// ServiceStaffLink is one eligibility pair.
type ServiceStaffLink struct {
	ServiceID uuid.UUID
	StaffID   uuid.UUID
}

// ListLinksByServiceIDs fetches eligibility links for the given services.
func (r *Repository) ListLinksByServiceIDs(ctx context.Context, serviceIDs []uuid.UUID) ([]ServiceStaffLink, error) {
	if len(serviceIDs) == 0 {
		return []ServiceStaffLink{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("service_id", "staff_id").
		From("service_staff").
		Where(squirrel.Eq{"service_id": serviceIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLinksByServiceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLinksByServiceIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	links := make([]ServiceStaffLink, 0)
	for rows.Next() {
		var link ServiceStaffLink
		if err := rows.Scan(&link.ServiceID, &link.StaffID); err != nil {
			return nil, fmt.Errorf("%w: ListLinksByServiceIDs - scan row: %v", ErrScanRow, err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLinksByServiceIDs - rows error: %v", ErrScanRow, err)
	}

	return links, nil
}

// ListEligibleStaffIDs fetches the ids of staff linked to a service.
func (r *Repository) ListEligibleStaffIDs(ctx context.Context, serviceID uuid.UUID) ([]uuid.UUID, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("staff_id").
		From("service_staff").
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("staff_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligibleStaffIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEligibleStaffIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListEligibleStaffIDs - scan staff_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEligibleStaffIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// IsStaffEligible reports whether the staff member is linked to the service.
func (r *Repository) IsStaffEligible(ctx context.Context, serviceID, staffID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("service_staff").
		Where(squirrel.Eq{"service_id": serviceID, "staff_id": staffID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsStaffEligible - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsStaffEligible - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

func (r *Repository) scanServices(rows *sql.Rows) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)

	for rows.Next() {
		var s domain.Service
		err := rows.Scan(
			&s.ID, &s.SalonID, &s.Name, &s.Category, &s.DurationMinutes, &s.BufferMinutes,
			&s.PriceCents, &s.CancelUntilHours, &s.IsActive, &s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
