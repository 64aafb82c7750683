package get_booking

import (
	"time"

	"github.com/salonplein/booking-platform/internal/domain"
)

// Response is one booking.
type Response struct {
	ID         string    `json:"id"`
	SalonID    string    `json:"salonId"`
	StaffID    string    `json:"staffId"`
	ServiceID  string    `json:"serviceId"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	PriceCents int64     `json:"priceCents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FromDomain maps the booking to the API response.
func FromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:         b.ID.String(),
		SalonID:    b.SalonID.String(),
		StaffID:    b.StaffID.String(),
		ServiceID:  b.ServiceID.String(),
		StartAt:    b.StartAt,
		EndAt:      b.EndAt,
		PriceCents: b.PriceCents,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
	}
}
