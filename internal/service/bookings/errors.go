package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSalonNotFound is returned when the salon does not exist.
	ErrSalonNotFound = errors.New("salon not found")

	// ErrAccessDenied is returned when the user may not touch the booking.
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyCancelled is returned when the booking was cancelled before.
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	// ErrCancelDeadlinePassed is returned when the cancellation notice
	// period has run out.
	ErrCancelDeadlinePassed = errors.New("cancellation deadline has passed")

	// ErrInternal is returned on unexpected failures inside the service.
	ErrInternal = errors.New("service: internal error")
)
