// Package ballot implements the proposal voting state machine: tallying
// yes/no votes and deciding a proposal's terminal status on finalization.
package ballot

import "errors"

// Proposal statuses. A proposal starts in StatusVoting and moves exactly
// once to StatusApproved or StatusRejected.
const (
	StatusVoting   = "voting"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Vote choices.
const (
	VoteYes = "yes"
	VoteNo  = "no"
)

var (
	// ErrInvalidChoice is returned for a vote that is not "yes" or "no".
	ErrInvalidChoice = errors.New(`vote must be "yes" or "no"`)
	// ErrAlreadyFinalized is returned when voting on or finalizing a
	// proposal that has already left the voting state.
	ErrAlreadyFinalized = errors.New("proposal has already been finalized")
)

// Tally is the vote count for one proposal.
type Tally struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
}

// ValidChoice reports whether v is an accepted vote value.
func ValidChoice(v string) bool {
	return v == VoteYes || v == VoteNo
}

// Count tallies a proposal's cast votes. Unknown values are ignored; the
// store only persists validated choices.
func Count(votes []string) Tally {
	var t Tally
	for _, v := range votes {
		switch v {
		case VoteYes:
			t.Yes++
		case VoteNo:
			t.No++
		}
	}
	return t
}

// Outcome decides the terminal status for a tally: approved only with a
// strict yes majority. A tie is a rejection.
func Outcome(t Tally) string {
	if t.Yes > t.No {
		return StatusApproved
	}
	return StatusRejected
}

// CanVote reports whether votes may still be cast for a proposal in the
// given status. Votes on terminal proposals are rejected.
func CanVote(status string) error {
	if status != StatusVoting {
		return ErrAlreadyFinalized
	}
	return nil
}

// CanFinalize reports whether a proposal in the given status may be
// finalized. Finalization is one-way; there is no re-opening.
func CanFinalize(status string) error {
	if status != StatusVoting {
		return ErrAlreadyFinalized
	}
	return nil
}
