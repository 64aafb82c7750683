package manage_blocks

import (
	"time"

	"github.com/salonplein/booking-platform/internal/domain"
)

// CreateRequest is the JSON body of POST /staff/{staffId}/blocks.
type CreateRequest struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
	Reason  *string   `json:"reason,omitempty"`
}

// BlockResponse is one blocked time window.
type BlockResponse struct {
	ID      string    `json:"id"`
	StaffID string    `json:"staffId"`
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
	Reason  *string   `json:"reason,omitempty"`
}

// ListResponse is the blocked times reply.
type ListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// FromDomain maps one block to the API response.
func FromDomain(b *domain.BlockedTime) *BlockResponse {
	return &BlockResponse{
		ID:      b.ID.String(),
		StaffID: b.StaffID.String(),
		StartAt: b.StartAt,
		EndAt:   b.EndAt,
		Reason:  b.Reason,
	}
}

// FromDomainList maps the blocks to the API response.
func FromDomainList(blocks []*domain.BlockedTime) *ListResponse {
	out := make([]BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, *FromDomain(b))
	}
	return &ListResponse{Blocks: out}
}
