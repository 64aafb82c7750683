package manage_services

import (
	"time"

	"github.com/google/uuid"

	"github.com/salonplein/booking-platform/internal/domain"
	"github.com/salonplein/booking-platform/internal/service/catalog"
)

// CreateRequest is the JSON body of POST /salons/{salonId}/services.
type CreateRequest struct {
	Name             string  `json:"name"`
	Category         *string `json:"category,omitempty"`
	DurationMinutes  int     `json:"durationMinutes"`
	BufferMinutes    int     `json:"bufferMinutes"`
	PriceCents       int64   `json:"priceCents"`
	CancelUntilHours int     `json:"cancelUntilHours"`
}

// ToServiceRequest maps the API request to the catalog request.
func (r *CreateRequest) ToServiceRequest(salonID uuid.UUID) *catalog.CreateRequest {
	return &catalog.CreateRequest{
		SalonID:          salonID,
		Name:             r.Name,
		Category:         r.Category,
		DurationMinutes:  r.DurationMinutes,
		BufferMinutes:    r.BufferMinutes,
		PriceCents:       r.PriceCents,
		CancelUntilHours: r.CancelUntilHours,
	}
}

// UpdateRequest is the JSON body of PATCH /services/{serviceId}. Absent
// fields keep their current value.
type UpdateRequest struct {
	Name             *string `json:"name,omitempty"`
	Category         *string `json:"category,omitempty"`
	DurationMinutes  *int    `json:"durationMinutes,omitempty"`
	BufferMinutes    *int    `json:"bufferMinutes,omitempty"`
	PriceCents       *int64  `json:"priceCents,omitempty"`
	CancelUntilHours *int    `json:"cancelUntilHours,omitempty"`
	IsActive         *bool   `json:"isActive,omitempty"`
}

// ToServiceRequest maps the API request to the catalog request.
func (r *UpdateRequest) ToServiceRequest() *catalog.UpdateRequest {
	return &catalog.UpdateRequest{
		Name:             r.Name,
		Category:         r.Category,
		DurationMinutes:  r.DurationMinutes,
		BufferMinutes:    r.BufferMinutes,
		PriceCents:       r.PriceCents,
		CancelUntilHours: r.CancelUntilHours,
		IsActive:         r.IsActive,
	}
}

// ServiceResponse is one catalog entry.
type ServiceResponse struct {
	ID               string    `json:"id"`
	SalonID          string    `json:"salonId"`
	Name             string    `json:"name"`
	Category         *string   `json:"category,omitempty"`
	DurationMinutes  int       `json:"durationMinutes"`
	BufferMinutes    int       `json:"bufferMinutes"`
	PriceCents       int64     `json:"priceCents"`
	CancelUntilHours int       `json:"cancelUntilHours"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ListResponse is the catalog reply.
type ListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// StaffIDsResponse lists the staff eligible for one service.
type StaffIDsResponse struct {
	StaffIDs []string `json:"staffIds"`
}

// FromDomain maps one service to the API response.
func FromDomain(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:               s.ID.String(),
		SalonID:          s.SalonID.String(),
		Name:             s.Name,
		Category:         s.Category,
		DurationMinutes:  s.DurationMinutes,
		BufferMinutes:    s.BufferMinutes,
		PriceCents:       s.PriceCents,
		CancelUntilHours: s.CancelUntilHours,
		IsActive:         s.IsActive,
		CreatedAt:        s.CreatedAt,
	}
}

// FromDomainList maps the catalog to the API response.
func FromDomainList(services []*domain.Service) *ListResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, *FromDomain(s))
	}
	return &ListResponse{Services: out}
}

// FromStaffIDs maps the eligible staff ids to the API response.
func FromStaffIDs(ids []uuid.UUID) *StaffIDsResponse {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return &StaffIDsResponse{StaffIDs: out}
}
