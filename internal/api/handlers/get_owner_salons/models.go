package get_owner_salons

import (
	"time"

	"github.com/salonplein/booking-platform/internal/domain"
)

// SalonResponse is one salon of the owner, including its moderation status.
type SalonResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Status    string    `json:"status"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"createdAt"`
}

// Response is the owner's salon list.
type Response struct {
	Salons []SalonResponse `json:"salons"`
}

// FromDomain maps the salons to the API response.
func FromDomain(salons []*domain.Salon) *Response {
	out := make([]SalonResponse, 0, len(salons))
	for _, s := range salons {
		out = append(out, SalonResponse{
			ID:        s.ID.String(),
			Name:      s.Name,
			City:      s.City,
			Status:    string(s.Status),
			Timezone:  s.Timezone,
			CreatedAt: s.CreatedAt,
		})
	}
	return &Response{Salons: out}
}
