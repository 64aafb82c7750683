package get_salon_bookings

import (
	"time"

	"github.com/salonplein/booking-platform/internal/domain"
)

// BookingResponse is one booking in the salon agenda.
type BookingResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	StaffID    string    `json:"staffId"`
	ServiceID  string    `json:"serviceId"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	PriceCents int64     `json:"priceCents"`
	Status     string    `json:"status"`
}

// Response is the salon agenda reply.
type Response struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomain maps the bookings to the API response.
func FromDomain(bookings []*domain.Booking) *Response {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingResponse{
			ID:         b.ID.String(),
			UserID:     b.UserID.String(),
			StaffID:    b.StaffID.String(),
			ServiceID:  b.ServiceID.String(),
			StartAt:    b.StartAt,
			EndAt:      b.EndAt,
			PriceCents: b.PriceCents,
			Status:     string(b.Status),
		})
	}
	return &Response{Bookings: out}
}
