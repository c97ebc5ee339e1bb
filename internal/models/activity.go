package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity types recorded as side effects of trip mutations.
const (
	ActivityTripCreated       = "trip_created"
	ActivityBudgetUpdated     = "budget_updated"
	ActivityExpenseAdded      = "expense_added"
	ActivityProposalCreated   = "proposal_created"
	ActivityProposalCompleted = "proposal_completed"
	ActivityTaskCompleted     = "task_completed"
	ActivityMemberJoined      = "member_joined"
)

// Activity is an append-only audit entry in a trip's feed
type Activity struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TripID    uuid.UUID `json:"trip_id" db:"trip_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Type      string    `json:"type" db:"type"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
