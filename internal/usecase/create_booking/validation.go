package create_booking

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest checks the request shape before any storage round trip.
func validateRequest(req *Request) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.SalonID == uuid.Nil {
		return fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.StaffID == uuid.Nil {
		return fmt.Errorf("%w: staffID is required", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.DealID != nil && *req.DealID == uuid.Nil {
		return fmt.Errorf("%w: dealID must not be empty when set", ErrInvalidInput)
	}

	return nil
}
