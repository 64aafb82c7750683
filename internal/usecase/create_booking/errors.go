package create_booking

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

	// ErrStaffNotFound is returned when the staff member does not exist, is
	// inactive, or works at another salon.
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrStaffNotEligible is returned when the staff member does not perform
	// the requested service.
	ErrStaffNotEligible = errors.New("staff member does not perform this service")

	// ErrSlotConflict is returned when the requested interval overlaps an
	// active booking of the staff member.
	ErrSlotConflict = errors.New("slot is no longer available")

	// ErrInvalidDeal is returned when the deal is missing, expired, already
	// redeemed, or does not match the requested slot.
	ErrInvalidDeal = errors.New("deal is not valid for this booking")

	// ErrStartInPast is returned when the requested start has already passed.
	ErrStartInPast = errors.New("booking start is in the past")

	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures inside the use case.
	ErrInternal = errors.New("usecase: internal error")
)
