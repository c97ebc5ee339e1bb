package models

import (
	"time"

	"github.com/google/uuid"
)

// Proposal is a group decision item that accumulates yes/no votes until a
// member finalizes it. Status values live in the ballot package.
type Proposal struct {
	ID          uuid.UUID `json:"id" db:"id"`
	TripID      uuid.UUID `json:"trip_id" db:"trip_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	CreatedByID uuid.UUID `json:"created_by_id" db:"created_by_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	CreatedBy UserSummary `json:"created_by"`
	Votes     []Vote      `json:"votes"`
}

// Vote is one member's current choice on a proposal. Re-casting overwrites
// the row; no history is kept.
type Vote struct {
	ProposalID uuid.UUID `json:"proposal_id" db:"proposal_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	Vote       string    `json:"vote" db:"vote"`
}
