package dto

import "github.com/felpschneider/TripSync/internal/models"

// MemberResponse is one trip member
type MemberResponse struct {
	User     models.UserSummary `json:"user"`
	Role     string             `json:"role"`
	JoinedAt string             `json:"joined_at"`
}

// InviteRequest represents the payload to invite someone by email
type InviteRequest struct {
	Email string `json:"email"`
}

// InviteResponse reports the outcome of an invite. Existing users are added
// directly; unknown addresses get an invite link.
type InviteResponse struct {
	Added      bool    `json:"added"`
	Message    string  `json:"message"`
	InviteLink *string `json:"invite_link,omitempty"`
}

// InviteValidationResponse describes a pending invite token
type InviteValidationResponse struct {
	Valid     bool   `json:"valid"`
	TripID    string `json:"trip_id,omitempty"`
	TripTitle string `json:"trip_title,omitempty"`
	Email     string `json:"email,omitempty"`
}

// AcceptInviteResponse is returned after joining a trip via invite
type AcceptInviteResponse struct {
	TripID string `json:"trip_id"`
}
