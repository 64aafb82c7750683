package get_availability

import "errors"

var (
	// ErrSalonNotFound is returned when the salon does not exist or is not
	// open for bookings.
	ErrSalonNotFound = errors.New("salon not found")

	// ErrServiceNotFound is returned when the service does not exist, is
	// inactive, or belongs to another salon.
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidService is returned when the service cannot produce a valid
	// booking footprint.
	ErrInvalidService = errors.New("service has an invalid duration")

	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures inside the use case.
	ErrInternal = errors.New("usecase: internal error")
)
