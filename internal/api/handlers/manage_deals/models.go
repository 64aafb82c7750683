package manage_deals

import (
	"time"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/internal/service/deals"
)

// CreateRequest is the JSON body of POST /salons/{salonId}/deals.
type CreateRequest struct {
	ServiceID            uuid.UUID `json:"serviceId"`
	StaffID              uuid.UUID `json:"staffId"`
	StartAt              time.Time `json:"startAt"`
	DiscountedPriceCents int64     `json:"discountedPriceCents"`
	ExpiresAt            time.Time `json:"expiresAt"`
}

// ToServiceRequest maps the API request to the deals request.
func (r *CreateRequest) ToServiceRequest(salonID uuid.UUID) *deals.CreateRequest {
	return &deals.CreateRequest{
		SalonID:              salonID,
		ServiceID:            r.ServiceID,
		StaffID:              r.StaffID,
		StartAt:              r.StartAt,
		DiscountedPriceCents: r.DiscountedPriceCents,
		ExpiresAt:            r.ExpiresAt,
	}
}

// DealResponse is one deal of the salon, active or not.
type DealResponse struct {
	ID                   string    `json:"id"`
	ServiceID            string    `json:"serviceId"`
	StaffID              string    `json:"staffId"`
	StartAt              time.Time `json:"startAt"`
	EndAt                time.Time `json:"endAt"`
	DiscountedPriceCents int64     `json:"discountedPriceCents"`
	ExpiresAt            time.Time `json:"expiresAt"`
	IsActive             bool      `json:"isActive"`
	CreatedAt            time.Time `json:"createdAt"`
}

// ListResponse is the salon deals reply.
type ListResponse struct {
	Deals []DealResponse `json:"deals"`
}

// FromDomain maps one deal to the API response.
func FromDomain(d *domain.Deal) *DealResponse {
	return &DealResponse{
		ID:                   d.ID.String(),
		ServiceID:            d.ServiceID.String(),
		StaffID:              d.StaffID.String(),
		StartAt:              d.StartAt,
		EndAt:                d.EndAt,
		DiscountedPriceCents: d.DiscountedPriceCents,
		ExpiresAt:            d.ExpiresAt,
		IsActive:             d.IsActive,
		CreatedAt:            d.CreatedAt,
	}
}

// FromDomainList maps the deals to the API response.
func FromDomainList(list []*domain.Deal) *ListResponse {
	out := make([]DealResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *FromDomain(d))
	}
	return &ListResponse{Deals: out}
}
