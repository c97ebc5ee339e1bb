package split

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestEqualSplit(t *testing.T) {
	ids := func(n int) []uuid.UUID {
		out := make([]uuid.UUID, n)
		for i := range out {
			out[i] = uuid.New()
		}
		return out
	}

	tests := []struct {
		name         string
		amount       float64
		participants []uuid.UUID
		wantErr      bool
		wantShare    float64
	}{
		{
			name:         "even division across four",
			amount:       1800.0,
			participants: ids(4),
			wantShare:    450.0,
		},
		{
			name:         "single participant owes everything",
			amount:       99.90,
			participants: ids(1),
			wantShare:    99.90,
		},
		{
			name:         "uneven division keeps identical shares",
			amount:       100.0,
			participants: ids(3),
			wantShare:    100.0 / 3.0,
		},
		{
			name:         "zero amount should error",
			amount:       0,
			participants: ids(2),
			wantErr:      true,
		},
		{
			name:         "negative amount should error",
			amount:       -10.0,
			participants: ids(2),
			wantErr:      true,
		},
		{
			name:         "no participants should error",
			amount:       50.0,
			participants: nil,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := EqualSplit(tt.amount, tt.participants)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EqualSplit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(shares) != len(tt.participants) {
				t.Fatalf("got %d shares, want %d", len(shares), len(tt.participants))
			}
			var sum float64
			for _, id := range tt.participants {
				share, ok := shares[id]
				if !ok {
					t.Fatalf("participant %s missing from shares", id)
				}
				if math.Abs(share-tt.wantShare) > 1e-9 {
					t.Errorf("share = %v, want %v", share, tt.wantShare)
				}
				sum += share
			}
			// Shares must reconstruct the amount within one minor unit.
			if math.Abs(sum-tt.amount) > 0.01 {
				t.Errorf("sum of shares = %v, want ~%v", sum, tt.amount)
			}
		})
	}
}

func TestBalanceForMember(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()
	dave := uuid.New()
	members := []uuid.UUID{alice, bob, carol, dave}

	mustSplit := func(amount float64, participants []uuid.UUID) map[uuid.UUID]float64 {
		t.Helper()
		shares, err := EqualSplit(amount, participants)
		if err != nil {
			t.Fatalf("EqualSplit: %v", err)
		}
		return shares
	}

	// Trip with budget 4000: 1800 paid by Alice, 450 paid by Bob,
	// both split equally across all four members.
	expenses := []ExpenseForBalance{
		{Amount: 1800.0, PaidByID: alice, Shares: mustSplit(1800.0, members)},
		{Amount: 450.0, PaidByID: bob, Shares: mustSplit(450.0, members)},
	}

	totals := Totals(4000.0, expenses)
	if math.Abs(totals.TotalSpent-2250.0) > 0.01 {
		t.Errorf("TotalSpent = %v, want 2250", totals.TotalSpent)
	}
	if math.Abs(totals.RemainingBudget-1750.0) > 0.01 {
		t.Errorf("RemainingBudget = %v, want 1750", totals.RemainingBudget)
	}

	a := BalanceForMember(expenses, alice)
	if math.Abs(a.TotalPaid-1800.0) > 0.01 {
		t.Errorf("alice TotalPaid = %v, want 1800", a.TotalPaid)
	}
	if math.Abs(a.TotalOwed-562.5) > 0.01 {
		t.Errorf("alice TotalOwed = %v, want 562.5", a.TotalOwed)
	}
	if math.Abs(a.Net-1237.5) > 0.01 {
		t.Errorf("alice Net = %v, want 1237.5", a.Net)
	}

	c := BalanceForMember(expenses, carol)
	if c.TotalPaid != 0 {
		t.Errorf("carol TotalPaid = %v, want 0", c.TotalPaid)
	}
	if math.Abs(c.Net+562.5) > 0.01 {
		t.Errorf("carol Net = %v, want -562.5", c.Net)
	}

	// Money is neither created nor destroyed by splitting.
	var netSum float64
	for _, m := range members {
		netSum += BalanceForMember(expenses, m).Net
	}
	if math.Abs(netSum) > 0.01 {
		t.Errorf("sum of nets = %v, want ~0", netSum)
	}
}

func TestBalanceForMemberOutsideExpense(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	shares, err := EqualSplit(30.0, []uuid.UUID{alice})
	if err != nil {
		t.Fatalf("EqualSplit: %v", err)
	}
	expenses := []ExpenseForBalance{{Amount: 30.0, PaidByID: alice, Shares: shares}}

	b := BalanceForMember(expenses, bob)
	if b.TotalPaid != 0 || b.TotalOwed != 0 || b.Net != 0 {
		t.Errorf("non-participant balance = %+v, want all zero", b)
	}
}

func TestTotalsOverBudget(t *testing.T) {
	payer := uuid.New()
	shares, _ := EqualSplit(500.0, []uuid.UUID{payer})
	totals := Totals(300.0, []ExpenseForBalance{{Amount: 500.0, PaidByID: payer, Shares: shares}})
	if math.Abs(totals.RemainingBudget+200.0) > 0.01 {
		t.Errorf("RemainingBudget = %v, want -200", totals.RemainingBudget)
	}
}
