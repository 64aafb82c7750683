package admin_salons

import (
	"time"

	"github.com/salonplein/booking-platform/internal/domain"
)

// ModerateRequest is the JSON body of PATCH /admin/salons/{salonId}.
type ModerateRequest struct {
	Status string `json:"status"`
}

// SalonResponse is one salon in the moderation queue.
type SalonResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListResponse is the moderation queue reply.
type ListResponse struct {
	Salons []SalonResponse `json:"salons"`
}

// FromDomain maps one salon to the API response.
func FromDomain(s *domain.Salon) *SalonResponse {
	return &SalonResponse{
		ID:        s.ID.String(),
		OwnerID:   s.OwnerID.String(),
		Name:      s.Name,
		City:      s.City,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainList maps the salons to the API response.
func FromDomainList(salons []*domain.Salon) *ListResponse {
	out := make([]SalonResponse, 0, len(salons))
	for _, s := range salons {
		out = append(out, *FromDomain(s))
	}
	return &ListResponse{Salons: out}
}
