package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxMessageLength caps chat message content.
const MaxMessageLength = 5000

// ChatMessage is one append-only message in a trip's chat
type ChatMessage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TripID    uuid.UUID `json:"trip_id" db:"trip_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	User UserSummary `json:"user"`
}
