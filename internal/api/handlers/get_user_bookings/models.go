package get_user_bookings

import (
	"time"

	"github.com/salonplein/booking-platform/internal/domain"
)

// BookingResponse is one booking in the list.
type BookingResponse struct {
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

// Response is the booking list reply.
type Response struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomain maps the bookings to the API response.
func FromDomain(bookings []*domain.Booking) *Response {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingResponse{
			ID:         b.ID.String(),
			SalonID:    b.SalonID.String(),
			StaffID:    b.StaffID.String(),
			ServiceID:  b.ServiceID.String(),
			StartAt:    b.StartAt,
			EndAt:      b.EndAt,
			PriceCents: b.PriceCents,
			Status:     string(b.Status),
			CreatedAt:  b.CreatedAt,
		})
	}
	return &Response{Bookings: out}
}
