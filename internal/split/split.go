// Package split implements the expense-splitting and balance arithmetic
// for trips. All functions are pure; callers persist the results.
package split

import (
	"fmt"

	"github.com/google/uuid"
)

// EqualSplit computes each participant's share of an expense split equally.
// Every participant receives the same share (amount / participant count);
// no remainder correction is applied, so the sum of shares may differ from
// the amount by a rounding epsilon when the division is not exact.
func EqualSplit(amount float64, participantIDs []uuid.UUID) (map[uuid.UUID]float64, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than zero")
	}
	if len(participantIDs) == 0 {
		return nil, fmt.Errorf("must have at least one participant")
	}

	share := amount / float64(len(participantIDs))
	shares := make(map[uuid.UUID]float64, len(participantIDs))
	for _, id := range participantIDs {
		shares[id] = share
	}
	return shares, nil
}
