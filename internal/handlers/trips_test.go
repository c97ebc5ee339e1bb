package handlers

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/models"
)

func TestGetTripHidesExistenceFromNonMembers(t *testing.T) {
	store := &fakeStore{
		hasTripAccessFn: func(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
			return false, nil
		},
	}
	h := NewTripHandler(store)

	tripID := uuid.New()
	rec := httptest.NewRecorder()
	r := authedRequest(t, http.MethodGet, "/api/v1/trips/"+tripID.String(), nil, uuid.New(),
		map[string]string{"id": tripID.String()})
	h.GetTrip(rec, r)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d (non-members must not learn the trip exists)", rec.Code, http.StatusNotFound)
	}
}

func TestUpdateTripOrganizerOnly(t *testing.T) {
	organizerID := uuid.New()
	memberID := uuid.New()
	tripID := uuid.New()

	store := &fakeStore{
		hasTripAccessFn: func(ctx context.Context, tid, uid uuid.UUID) (bool, error) {
			return true, nil
		},
		getTripFn: func(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
			return &models.Trip{ID: tripID, OrganizerID: organizerID, Budget: 4000}, nil
		},
	}
	h := NewTripHandler(store)

	rec := httptest.NewRecorder()
	body := dto.UpdateTripRequest{Title: "Beach week", Destination: "Florianopolis",
		StartDate: "2026-09-10", EndDate: "2026-09-17", Budget: 5000}
	r := authedRequest(t, http.MethodPut, "/api/v1/trips/"+tripID.String(), body, memberID,
		map[string]string{"id": tripID.String()})
	h.UpdateTrip(rec, r)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestCreateTripValidation(t *testing.T) {
	h := NewTripHandler(&fakeStore{})

	tests := []struct {
		name string
		body dto.CreateTripRequest
	}{
		{"missing title", dto.CreateTripRequest{Destination: "Paris", StartDate: "2026-09-10", EndDate: "2026-09-17", Budget: 1000}},
		{"zero budget", dto.CreateTripRequest{Title: "Trip", Destination: "Paris", StartDate: "2026-09-10", EndDate: "2026-09-17"}},
		{"negative budget", dto.CreateTripRequest{Title: "Trip", Destination: "Paris", StartDate: "2026-09-10", EndDate: "2026-09-17", Budget: -5}},
		{"end before start", dto.CreateTripRequest{Title: "Trip", Destination: "Paris", StartDate: "2026-09-17", EndDate: "2026-09-10", Budget: 1000}},
		{"bad date", dto.CreateTripRequest{Title: "Trip", Destination: "Paris", StartDate: "soon", EndDate: "2026-09-17", Budget: 1000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.CreateTrip(rec, authedRequest(t, http.MethodPost, "/api/v1/trips", tt.body, uuid.New(), nil))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

// Four members, budget 4000. Alice pays the 1800 dinner split across
// everyone; Bob pays the 2250 hotel. user_spent is what Alice paid, and
// owed_to_user is her payments minus her 1012.50 of accumulated shares.
func TestListTripsComputesMemberPosition(t *testing.T) {
	aliceID := uuid.New()
	bobID := uuid.New()
	carolID := uuid.New()
	daveID := uuid.New()
	tripID := uuid.New()
	all := []uuid.UUID{aliceID, bobID, carolID, daveID}

	dinner := models.Expense{
		ID: uuid.New(), TripID: tripID, Amount: 1800, PaidByID: aliceID, Date: time.Now(),
	}
	hotel := models.Expense{
		ID: uuid.New(), TripID: tripID, Amount: 2250, PaidByID: bobID, Date: time.Now(),
	}
	for _, id := range all {
		dinner.Splits = append(dinner.Splits, models.ExpenseSplit{UserID: id, Amount: 450})
		hotel.Splits = append(hotel.Splits, models.ExpenseSplit{UserID: id, Amount: 562.5})
	}

	store := &fakeStore{
		listTripsForUserFn: func(ctx context.Context, userID uuid.UUID) ([]models.Trip, error) {
			return []models.Trip{{ID: tripID, Title: "Road trip", Budget: 4000,
				StartDate: time.Now(), EndDate: time.Now()}}, nil
		},
		listExpensesFn: func(ctx context.Context, id uuid.UUID) ([]models.Expense, error) {
			return []models.Expense{dinner, hotel}, nil
		},
		countMembersFn: func(ctx context.Context, id uuid.UUID) (int, error) {
			return 4, nil
		},
	}
	h := NewTripHandler(store)

	rec := httptest.NewRecorder()
	h.ListTrips(rec, authedRequest(t, http.MethodGet, "/api/v1/trips", nil, aliceID, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	trips := decodeBody[[]dto.TripSummary](t, rec)
	if len(trips) != 1 {
		t.Fatalf("got %d trips, want 1", len(trips))
	}

	got := trips[0]
	if got.TotalSpent != 4050 {
		t.Errorf("TotalSpent = %v, want 4050", got.TotalSpent)
	}
	if got.UserSpent != 1800 {
		t.Errorf("UserSpent = %v, want 1800 (the amount Alice paid)", got.UserSpent)
	}
	// paid 1800, owes 1012.50 across both expenses
	if math.Abs(got.OwedToUser-787.5) > 1e-9 {
		t.Errorf("OwedToUser = %v, want 787.5", got.OwedToUser)
	}
	if got.MemberCount != 4 {
		t.Errorf("MemberCount = %d, want 4", got.MemberCount)
	}
}
