package dto

import (
	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/models"
)

// CreateExpenseRequest represents the payload to record an expense. The
// amount is split equally across participant_ids; the payer does not have
// to be a participant.
type CreateExpenseRequest struct {
	Description    string      `json:"description"`
	Amount         float64     `json:"amount"`
	Date           string      `json:"date"`
	Category       string      `json:"category"`
	PaidByID       uuid.UUID   `json:"paid_by_id"`
	ParticipantIDs []uuid.UUID `json:"participant_ids"`
	ProofImageURL  *string     `json:"proof_image_url"`
}

// UpdateExpenseRequest replaces an expense and its splits wholesale
type UpdateExpenseRequest struct {
	Description    string      `json:"description"`
	Amount         float64     `json:"amount"`
	Date           string      `json:"date"`
	Category       string      `json:"category"`
	PaidByID       uuid.UUID   `json:"paid_by_id"`
	ParticipantIDs []uuid.UUID `json:"participant_ids"`
	ProofImageURL  *string     `json:"proof_image_url"`
}

// ExpenseParticipant is one participant's share of an expense
type ExpenseParticipant struct {
	User   models.UserSummary `json:"user"`
	Amount float64            `json:"amount"`
}

// ExpenseResponse represents an expense with its payer and per-participant
// shares resolved
type ExpenseResponse struct {
	ID            string               `json:"id"`
	TripID        string               `json:"trip_id"`
	Description   string               `json:"description"`
	Amount        float64              `json:"amount"`
	Date          string               `json:"date"`
	Category      string               `json:"category"`
	SplitMethod   string               `json:"split_method"`
	ProofImageURL *string              `json:"proof_image_url,omitempty"`
	PaidBy        models.UserSummary   `json:"paid_by"`
	Participants  []ExpenseParticipant `json:"participants"`
	CreatedAt     string               `json:"created_at"`
}
