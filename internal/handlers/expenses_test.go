package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/models"
)

func TestCreateExpenseSplitsEqually(t *testing.T) {
	tripID := uuid.New()
	payerID := uuid.New()
	participants := []uuid.UUID{payerID, uuid.New(), uuid.New(), uuid.New()}

	var stored *models.Expense
	store := &fakeStore{
		hasTripAccessFn: func(ctx context.Context, tid, uid uuid.UUID) (bool, error) {
			return true, nil
		},
		getUserByIDFn: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return testUser(id, "alice"), nil
		},
		createExpenseFn: func(ctx context.Context, expense *models.Expense, activity *models.Activity) error {
			stored = expense
			return nil
		},
		getExpenseFn: func(ctx context.Context, tid, eid uuid.UUID) (*models.Expense, error) {
			return stored, nil
		},
	}
	h := NewExpenseHandler(store)

	body := dto.CreateExpenseRequest{
		Description:    "Dinner",
		Amount:         1800,
		Date:           "2026-09-11",
		Category:       models.CategoryFood,
		PaidByID:       payerID,
		ParticipantIDs: participants,
	}
	rec := httptest.NewRecorder()
	r := authedRequest(t, http.MethodPost, "/api/v1/trips/"+tripID.String()+"/expenses", body, payerID,
		map[string]string{"id": tripID.String()})
	h.CreateExpense(rec, r)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if stored == nil {
		t.Fatal("expense never reached the store")
	}
	if len(stored.Splits) != 4 {
		t.Fatalf("got %d splits, want 4", len(stored.Splits))
	}
	for _, s := range stored.Splits {
		if s.Amount != 450 {
			t.Errorf("split for %s = %v, want 450", s.UserID, s.Amount)
		}
	}
	if stored.SplitMethod != models.SplitMethodEqual {
		t.Errorf("split method = %q, want %q", stored.SplitMethod, models.SplitMethodEqual)
	}

	// The activity entry rides in the same call as the expense
	if stored.TripID != tripID {
		t.Errorf("trip id = %s, want %s", stored.TripID, tripID)
	}
}

func TestCreateExpenseRejectsBadInput(t *testing.T) {
	tripID := uuid.New()
	memberID := uuid.New()
	outsiderID := uuid.New()

	store := &fakeStore{
		hasTripAccessFn: func(ctx context.Context, tid, uid uuid.UUID) (bool, error) {
			return uid != outsiderID, nil
		},
	}
	h := NewExpenseHandler(store)

	valid := dto.CreateExpenseRequest{
		Description:    "Dinner",
		Amount:         100,
		Date:           "2026-09-11",
		Category:       models.CategoryFood,
		PaidByID:       memberID,
		ParticipantIDs: []uuid.UUID{memberID},
	}

	tests := []struct {
		name   string
		mutate func(r *dto.CreateExpenseRequest)
	}{
		{"zero amount", func(r *dto.CreateExpenseRequest) { r.Amount = 0 }},
		{"negative amount", func(r *dto.CreateExpenseRequest) { r.Amount = -10 }},
		{"no participants", func(r *dto.CreateExpenseRequest) { r.ParticipantIDs = nil }},
		{"unknown category", func(r *dto.CreateExpenseRequest) { r.Category = "souvenirs" }},
		{"empty description", func(r *dto.CreateExpenseRequest) { r.Description = "  " }},
		{"non-member participant", func(r *dto.CreateExpenseRequest) {
			r.ParticipantIDs = []uuid.UUID{memberID, outsiderID}
		}},
		{"non-member payer", func(r *dto.CreateExpenseRequest) { r.PaidByID = outsiderID }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := valid
			tt.mutate(&body)

			rec := httptest.NewRecorder()
			r := authedRequest(t, http.MethodPost, "/api/v1/trips/"+tripID.String()+"/expenses", body, memberID,
				map[string]string{"id": tripID.String()})
			h.CreateExpense(rec, r)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

// A 100.00 across three people stores 33.33... for each; the persisted
// shares simply are amount divided by count, with no remainder correction.
func TestCreateExpenseThreeWaySplit(t *testing.T) {
	tripID := uuid.New()
	payerID := uuid.New()
	participants := []uuid.UUID{payerID, uuid.New(), uuid.New()}

	var stored *models.Expense
	store := &fakeStore{
		hasTripAccessFn: func(ctx context.Context, tid, uid uuid.UUID) (bool, error) {
			return true, nil
		},
		getUserByIDFn: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return testUser(id, "alice"), nil
		},
		createExpenseFn: func(ctx context.Context, expense *models.Expense, activity *models.Activity) error {
			stored = expense
			return nil
		},
		getExpenseFn: func(ctx context.Context, tid, eid uuid.UUID) (*models.Expense, error) {
			return stored, nil
		},
	}
	h := NewExpenseHandler(store)

	body := dto.CreateExpenseRequest{
		Description:    "Cab",
		Amount:         100,
		Date:           "2026-09-11",
		Category:       models.CategoryTransport,
		PaidByID:       payerID,
		ParticipantIDs: participants,
	}
	rec := httptest.NewRecorder()
	r := authedRequest(t, http.MethodPost, "/api/v1/trips/"+tripID.String()+"/expenses", body, payerID,
		map[string]string{"id": tripID.String()})
	h.CreateExpense(rec, r)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	want := 100.0 / 3.0
	for _, s := range stored.Splits {
		if s.Amount != want {
			t.Errorf("split = %v, want exactly %v", s.Amount, want)
		}
	}
}
