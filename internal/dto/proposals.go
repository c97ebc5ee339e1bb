package dto

import "github.com/felpschneider/TripSync/internal/models"

// CreateProposalRequest represents the payload to open a proposal
type CreateProposalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// VoteRequest carries a yes/no choice
type VoteRequest struct {
	Vote string `json:"vote"`
}

// VoteCounts is the aggregated tally of a proposal
type VoteCounts struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
}

// ProposalResponse is a proposal with its tally and the caller's own vote,
// if any
type ProposalResponse struct {
	ID          string             `json:"id"`
	TripID      string             `json:"trip_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Status      string             `json:"status"`
	CreatedBy   models.UserSummary `json:"created_by"`
	CreatedAt   string             `json:"created_at"`
	Votes       VoteCounts         `json:"votes"`
	UserVote    *string            `json:"user_vote"`
}
