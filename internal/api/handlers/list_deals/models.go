package list_deals

import (
	"time"

	"github.com/salonplein/booking-platform/internal/domain"
)

// DealResponse is one redeemable deal.
type DealResponse struct {
	ID                   string    `json:"id"`
	SalonID              string    `json:"salonId"`
	ServiceID            string    `json:"serviceId"`
	StaffID              string    `json:"staffId"`
	StartAt              time.Time `json:"startAt"`
	EndAt                time.Time `json:"endAt"`
	DiscountedPriceCents int64     `json:"discountedPriceCents"`
	ExpiresAt            time.Time `json:"expiresAt"`
}

// Response is the deal list reply.
type Response struct {
	Deals []DealResponse `json:"deals"`
}

// FromDomain maps the deals to the API response.
func FromDomain(deals []*domain.Deal) *Response {
	out := make([]DealResponse, 0, len(deals))
	for _, d := range deals {
		out = append(out, DealResponse{
			ID:                   d.ID.String(),
			SalonID:              d.SalonID.String(),
			ServiceID:            d.ServiceID.String(),
			StaffID:              d.StaffID.String(),
			StartAt:              d.StartAt,
			EndAt:                d.EndAt,
			DiscountedPriceCents: d.DiscountedPriceCents,
			ExpiresAt:            d.ExpiresAt,
		})
	}
	return &Response{Deals: out}
}
