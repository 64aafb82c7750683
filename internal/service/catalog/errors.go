package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist.
	ErrServiceNotFound = errors.New("service not found")

	// ErrSalonNotFound is returned when the salon does not exist.
	ErrSalonNotFound = errors.New("salon not found")

	// ErrStaffNotFound is returned when the staff member does not exist.
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrAccessDenied is returned when the user does not own the salon.
	ErrAccessDenied = errors.New("access denied")

	// ErrStaffMismatch is returned when linking staff of a different salon.
	ErrStaffMismatch = errors.New("staff member belongs to a different salon")

	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures inside the service.
	ErrInternal = errors.New("service: internal error")
)
