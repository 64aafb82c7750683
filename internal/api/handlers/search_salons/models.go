package search_salons

import (
	"github.com/salonplein/booking-platform/internal/domain"
)

// SalonResponse is one salon in the search result.
type SalonResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Address     *string `json:"address,omitempty"`
	Postcode    *string `json:"postcode,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Response is the search reply.
type Response struct {
	Salons []SalonResponse `json:"salons"`
}

// FromDomain maps the salons to the API response.
func FromDomain(salons []*domain.Salon) *Response {
	out := make([]SalonResponse, 0, len(salons))
	for _, s := range salons {
		out = append(out, SalonResponse{
			ID:          s.ID.String(),
			Name:        s.Name,
			City:        s.City,
			Address:     s.Address,
			Postcode:    s.Postcode,
			Description: s.Description,
		})
	}
	return &Response{Salons: out}
}
