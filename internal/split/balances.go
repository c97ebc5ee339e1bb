package split

import "github.com/google/uuid"

// ExpenseForBalance carries the minimal expense information needed for
// balance calculations.
type ExpenseForBalance struct {
	Amount   float64
	PaidByID uuid.UUID
	Shares   map[uuid.UUID]float64 // participant -> persisted split amount
}

// MemberBalance is one member's aggregate position across a trip's expenses.
type MemberBalance struct {
	TotalPaid float64 // sum of amounts for expenses this member paid
	TotalOwed float64 // sum of this member's own split shares
	Net       float64 // TotalPaid - TotalOwed; positive = others owe them
}

// TripTotals is the trip-level spending summary.
type TripTotals struct {
	TotalSpent      float64
	RemainingBudget float64 // budget - TotalSpent; may go negative
}

// BalanceForMember aggregates what a member paid and owes across all of a
// trip's expenses. A member with no split row in an expense owes nothing
// for it.
func BalanceForMember(expenses []ExpenseForBalance, memberID uuid.UUID) MemberBalance {
	var b MemberBalance
	for _, e := range expenses {
		if e.PaidByID == memberID {
			b.TotalPaid += e.Amount
		}
		if share, ok := e.Shares[memberID]; ok {
			b.TotalOwed += share
		}
	}
	b.Net = b.TotalPaid - b.TotalOwed
	return b
}

// Totals computes total spending and the remaining budget for a trip.
// Over-budget trips yield a negative remainder; that is a displayed state,
// not an error.
func Totals(budget float64, expenses []ExpenseForBalance) TripTotals {
	var spent float64
	for _, e := range expenses {
		spent += e.Amount
	}
	return TripTotals{
		TotalSpent:      spent,
		RemainingBudget: budget - spent,
	}
}
