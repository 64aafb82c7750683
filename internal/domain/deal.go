package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deal is a limited-time discounted slot: one specific staff member, service
// and start instant offered at a reduced price until it expires or is
// redeemed. Redemption deactivates the deal, so it can be honored only once.
type Deal struct {
	ID                   uuid.UUID
	SalonID              uuid.UUID
	StaffID              uuid.UUID
	ServiceID            uuid.UUID
	StartAt              time.Time
	EndAt                time.Time
	DiscountedPriceCents int64
	ExpiresAt            time.Time
	IsActive             bool
	CreatedAt            time.Time
}

// IsRedeemable reports whether the deal is still active and unexpired at now.
func (d *Deal) IsRedeemable(now time.Time) bool {
	return d.IsActive && d.ExpiresAt.After(now)
}

// Matches reports whether the deal is for exactly the requested salon,
// service, staff member and start instant.
func (d *Deal) Matches(salonID, serviceID, staffID uuid.UUID, startAt time.Time) bool {
	return d.SalonID == salonID &&
		d.ServiceID == serviceID &&
		d.StaffID == staffID &&
		d.StartAt.Equal(startAt)
}
