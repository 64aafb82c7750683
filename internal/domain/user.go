package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's role on the platform.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleSalonOwner Role = "salon_owner"
	RoleAdmin      Role = "admin"
)

// User is the platform-side profile of an authenticated account.
// Authentication itself happens upstream; the gateway forwards the user id.
type User struct {
	ID        uuid.UUID
	Email     *string
	Name      *string
	Role      Role
	CreatedAt time.Time
}

// IsAdmin returns true for administrator accounts.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
