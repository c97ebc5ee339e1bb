package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Email           string    `json:"email" db:"email"`
	PasswordHash    string    `json:"-" db:"password_hash"`
	ProfileImageURL *string   `json:"profile_image_url" db:"profile_image_url"`
	PixKey          *string   `json:"pix_key" db:"pix_key"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// UserSummary is the public subset of a user embedded in trip-scoped
// responses (payers, participants, authors)
type UserSummary struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PixKey          *string   `json:"pix_key,omitempty"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
}
