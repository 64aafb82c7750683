package admin_users

import (
	"time"

	"github.com/salonplein/booking-platform/internal/domain"
)

// UserResponse is one platform user.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     *string   `json:"email,omitempty"`
	Name      *string   `json:"name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Response is the user list reply.
type Response struct {
	Users []UserResponse `json:"users"`
}

// FromDomain maps the users to the API response.
func FromDomain(users []*domain.User) *Response {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{
			ID:        u.ID.String(),
			Email:     u.Email,
			Name:      u.Name,
			Role:      string(u.Role),
			CreatedAt: u.CreatedAt,
		})
	}
	return &Response{Users: out}
}
