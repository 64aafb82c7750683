package domain

import (
	"time"

	"github.com/google/uuid"
)

// CandidateSlot is a bookable start time for one staff member. Slots are
// ephemeral: recomputed on every availability query, never persisted, and
// carry no identity beyond (staff, start).
type CandidateSlot struct {
	StaffID uuid.UUID
	StartAt time.Time
}
