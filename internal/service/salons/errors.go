package salons

import "errors"

var (
	// ErrSalonNotFound is returned when the salon does not exist.
	ErrSalonNotFound = errors.New("salon not found")

	// ErrAccessDenied is returned when the user may not touch the salon.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidStatus is returned for an unknown moderation status.
	ErrInvalidStatus = errors.New("invalid salon status")

	// ErrInternal is returned on unexpected failures inside the service.
	ErrInternal = errors.New("service: internal error")
)
