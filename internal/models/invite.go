package models

import (
	"time"

	"github.com/google/uuid"
)

// InviteTTL is how long an invite token stays valid.
const InviteTTL = 7 * 24 * time.Hour

// Invite is a one-time email invitation to join a trip
type Invite struct {
	Token     uuid.UUID `json:"token" db:"token"`
	TripID    uuid.UUID `json:"trip_id" db:"trip_id"`
	Email     string    `json:"email" db:"email"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	Used      bool      `json:"used" db:"used"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Expired reports whether the invite is past its expiry at time now.
func (i *Invite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
