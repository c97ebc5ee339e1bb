package models

import (
	"time"

	"github.com/google/uuid"
)

// Member roles within a trip. Exactly one organizer exists per trip: the
// creator.
const (
	RoleOrganizer = "organizer"
	RoleMember    = "member"
)

// Trip represents a group trip created by a user
type Trip struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Destination string    `json:"destination" db:"destination"`
	StartDate   time.Time `json:"start_date" db:"start_date"`
	EndDate     time.Time `json:"end_date" db:"end_date"`
	Budget      float64   `json:"budget" db:"budget"`
	OrganizerID uuid.UUID `json:"organizer_id" db:"organizer_id"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// TripMember is one user's membership in a trip
type TripMember struct {
	TripID   uuid.UUID `json:"trip_id" db:"trip_id"`
	UserID   uuid.UUID `json:"user_id" db:"user_id"`
	Role     string    `json:"role" db:"role"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`

	User UserSummary `json:"user"`
}
