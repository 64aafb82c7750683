package staff

import "errors"

var (
	// ErrStaffNotFound is returned when the staff member does not exist.
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrSalonNotFound is returned when the salon does not exist.
	ErrSalonNotFound = errors.New("salon not found")

	// ErrAccessDenied is returned when the user does not own the salon.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures inside the service.
	ErrInternal = errors.New("service: internal error")
)
