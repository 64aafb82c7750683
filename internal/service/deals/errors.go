package deals

import "errors"

var (
	// ErrDealNotFound is returned when the deal does not exist.
	ErrDealNotFound = errors.New("deal not found")

	// ErrSalonNotFound is returned when the salon does not exist.
	ErrSalonNotFound = errors.New("salon not found")

	// ErrServiceNotFound is returned when the discounted service does not
	// exist or belongs to another salon.
	ErrServiceNotFound = errors.New("service not found")

	// ErrStaffNotFound is returned when the staff member does not exist, is
	// inactive, or works at another salon.
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrStaffNotEligible is returned when the staff member does not perform
	// the discounted service.
	ErrStaffNotEligible = errors.New("staff member does not perform this service")

	// ErrAccessDenied is returned when the user does not own the salon.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures inside the service.
	ErrInternal = errors.New("service: internal error")
)
