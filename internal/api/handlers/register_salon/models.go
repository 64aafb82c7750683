package register_salon

import (
	"time"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/internal/service/salons"
)

// Request is the JSON body of POST /salons.
type Request struct {
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Address     *string `json:"address,omitempty"`
	Postcode    *string `json:"postcode,omitempty"`
	Description *string `json:"description,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
}

// ToServiceRequest maps the API request to the service request.
func (r *Request) ToServiceRequest(ownerID uuid.UUID) *salons.RegisterRequest {
	return &salons.RegisterRequest{
		OwnerID:     ownerID,
		Name:        r.Name,
		City:        r.City,
		Address:     r.Address,
		Postcode:    r.Postcode,
		Description: r.Description,
		Timezone:    r.Timezone,
	}
}

// Response is the registered salon.
type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Status    string    `json:"status"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomain maps the salon to the API response.
func FromDomain(s *domain.Salon) *Response {
	return &Response{
		ID:        s.ID.String(),
		Name:      s.Name,
		City:      s.City,
		Status:    string(s.Status),
		Timezone:  s.Timezone,
		CreatedAt: s.CreatedAt,
	}
}
