package manage_staff

import (
	"time"

	"github.com/salonplein/booking-platform/internal/domain"
)

// CreateRequest is the JSON body of POST /salons/{salonId}/staff.
type CreateRequest struct {
	Name string `json:"name"`
}

// UpdateRequest is the JSON body of PATCH /staff/{staffId}.
type UpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// StaffResponse is one staff member.
type StaffResponse struct {
	ID        string    `json:"id"`
	SalonID   string    `json:"salonId"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListResponse is the roster reply.
type ListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// FromDomain maps one staff member to the API response.
func FromDomain(m *domain.StaffMember) *StaffResponse {
	return &StaffResponse{
		ID:        m.ID.String(),
		SalonID:   m.SalonID.String(),
		Name:      m.Name,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomainList maps the roster to the API response.
func FromDomainList(members []*domain.StaffMember) *ListResponse {
	out := make([]StaffResponse, 0, len(members))
	for _, m := range members {
		out = append(out, *FromDomain(m))
	}
	return &ListResponse{Staff: out}
}
