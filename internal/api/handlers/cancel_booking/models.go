package cancel_booking

import (
	"time"

	"github.com/salonplein/booking-platform/internal/domain"
)

// Response is the cancelled booking.
type Response struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	StartAt   time.Time `json:"startAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomain maps the booking to the API response.
func FromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:        b.ID.String(),
		Status:    string(b.Status),
		StartAt:   b.StartAt,
		UpdatedAt: b.UpdatedAt,
	}
}
