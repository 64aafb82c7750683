package create_booking

import (
	"time"

	"github.com/google/uuid"

	createBooking "github.com/salonplein/booking-platform/internal/usecase/create_booking"
)

// Request is the JSON body of POST /bookings.
type Request struct {
	SalonID   uuid.UUID  `json:"salonId"`
	ServiceID uuid.UUID  `json:"serviceId"`
	StaffID   uuid.UUID  `json:"staffId"`
	StartAt   time.Time  `json:"startAt"`
	DealID    *uuid.UUID `json:"dealId,omitempty"`
}

// ToUseCaseRequest maps the API request to the use case request.
func (r *Request) ToUseCaseRequest(userID uuid.UUID) *createBooking.Request {
	return &createBooking.Request{
		UserID:    userID,
		SalonID:   r.SalonID,
		ServiceID: r.ServiceID,
		StaffID:   r.StaffID,
		StartAt:   r.StartAt,
		DealID:    r.DealID,
	}
}

// Response is the created booking.
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

// FromUseCaseResponse maps the use case result to the API response.
func FromUseCaseResponse(res *createBooking.Response) *Response {
	return &Response{
		ID:         res.ID.String(),
		SalonID:    res.SalonID.String(),
		StaffID:    res.StaffID.String(),
		ServiceID:  res.ServiceID.String(),
		StartAt:    res.StartAt,
		EndAt:      res.EndAt,
		PriceCents: res.PriceCents,
		Status:     res.Status,
		CreatedAt:  res.CreatedAt,
	}
}
