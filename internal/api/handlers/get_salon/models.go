package get_salon

import (
	"github.com/salonplein/booking-platform/internal/domain"
)

// ServiceResponse is one bookable service of the salon.
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        *string `json:"category,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	PriceCents      int64   `json:"priceCents"`
}

// StaffResponse is one active staff member of the salon.
type StaffResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Response is the public salon detail.
type Response struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	City        string            `json:"city"`
	Address     *string           `json:"address,omitempty"`
	Postcode    *string           `json:"postcode,omitempty"`
	Description *string           `json:"description,omitempty"`
	Services    []ServiceResponse `json:"services"`
	Staff       []StaffResponse   `json:"staff"`
}

// FromDomain maps the salon, its services and its staff to the API response.
func FromDomain(salon *domain.Salon, services []*domain.Service, members []*domain.StaffMember) *Response {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceResponse{
			ID:              s.ID.String(),
			Name:            s.Name,
			Category:        s.Category,
			DurationMinutes: s.DurationMinutes,
			PriceCents:      s.PriceCents,
		})
	}

	staff := make([]StaffResponse, 0, len(members))
	for _, m := range members {
		staff = append(staff, StaffResponse{
			ID:   m.ID.String(),
			Name: m.Name,
		})
	}

	return &Response{
		ID:          salon.ID.String(),
		Name:        salon.Name,
		City:        salon.City,
		Address:     salon.Address,
		Postcode:    salon.Postcode,
		Description: salon.Description,
		Services:    out,
		Staff:       staff,
	}
}
