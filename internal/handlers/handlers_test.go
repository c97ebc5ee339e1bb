package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/middleware"
	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
)

// fakeStore lets each test supply just the store behavior it needs. Calling
// an endpoint that touches an unset method panics, which points straight at
// the missing stub.
type fakeStore struct {
	storage.Store

	createUserFn       func(ctx context.Context, user *models.User) error
	getUserByEmailFn   func(ctx context.Context, email string) (*models.User, error)
	getUserByIDFn      func(ctx context.Context, id uuid.UUID) (*models.User, error)
	updateUserFn       func(ctx context.Context, user *models.User) error
	getTripFn          func(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	listTripsForUserFn func(ctx context.Context, userID uuid.UUID) ([]models.Trip, error)
	updateTripFn       func(ctx context.Context, trip *models.Trip, activity *models.Activity) error
	hasTripAccessFn    func(ctx context.Context, tripID, userID uuid.UUID) (bool, error)
	countMembersFn     func(ctx context.Context, tripID uuid.UUID) (int, error)
	listExpensesFn     func(ctx context.Context, tripID uuid.UUID) ([]models.Expense, error)
	createExpenseFn    func(ctx context.Context, expense *models.Expense, activity *models.Activity) error
	getExpenseFn       func(ctx context.Context, tripID, expenseID uuid.UUID) (*models.Expense, error)
	getProposalFn      func(ctx context.Context, tripID, proposalID uuid.UUID) (*models.Proposal, error)
	upsertVoteFn       func(ctx context.Context, vote *models.Vote) error
	finalizeFn         func(ctx context.Context, proposalID uuid.UUID, status string, activity *models.Activity) error
	createMessageFn    func(ctx context.Context, msg *models.ChatMessage) error
	getInviteFn        func(ctx context.Context, token uuid.UUID) (*models.Invite, error)
	acceptInviteFn     func(ctx context.Context, token uuid.UUID, member *models.TripMember, activity *models.Activity) error
}

func (f *fakeStore) CreateUser(ctx context.Context, user *models.User) error {
	return f.createUserFn(ctx, user)
}

func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.getUserByEmailFn(ctx, email)
}

func (f *fakeStore) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return f.getUserByIDFn(ctx, id)
}

func (f *fakeStore) UpdateUser(ctx context.Context, user *models.User) error {
	return f.updateUserFn(ctx, user)
}

func (f *fakeStore) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	return f.getTripFn(ctx, id)
}

func (f *fakeStore) ListTripsForUser(ctx context.Context, userID uuid.UUID) ([]models.Trip, error) {
	return f.listTripsForUserFn(ctx, userID)
}

func (f *fakeStore) UpdateTrip(ctx context.Context, trip *models.Trip, activity *models.Activity) error {
	return f.updateTripFn(ctx, trip, activity)
}

func (f *fakeStore) HasTripAccess(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	return f.hasTripAccessFn(ctx, tripID, userID)
}

func (f *fakeStore) CountTripMembers(ctx context.Context, tripID uuid.UUID) (int, error) {
	return f.countMembersFn(ctx, tripID)
}

func (f *fakeStore) ListExpenses(ctx context.Context, tripID uuid.UUID) ([]models.Expense, error) {
	return f.listExpensesFn(ctx, tripID)
}

func (f *fakeStore) CreateExpense(ctx context.Context, expense *models.Expense, activity *models.Activity) error {
	return f.createExpenseFn(ctx, expense, activity)
}

func (f *fakeStore) GetExpense(ctx context.Context, tripID, expenseID uuid.UUID) (*models.Expense, error) {
	return f.getExpenseFn(ctx, tripID, expenseID)
}

func (f *fakeStore) GetProposal(ctx context.Context, tripID, proposalID uuid.UUID) (*models.Proposal, error) {
	return f.getProposalFn(ctx, tripID, proposalID)
}

func (f *fakeStore) UpsertVote(ctx context.Context, vote *models.Vote) error {
	return f.upsertVoteFn(ctx, vote)
}

func (f *fakeStore) FinalizeProposal(ctx context.Context, proposalID uuid.UUID, status string, activity *models.Activity) error {
	return f.finalizeFn(ctx, proposalID, status, activity)
}

func (f *fakeStore) CreateMessage(ctx context.Context, msg *models.ChatMessage) error {
	return f.createMessageFn(ctx, msg)
}

func (f *fakeStore) GetInvite(ctx context.Context, token uuid.UUID) (*models.Invite, error) {
	return f.getInviteFn(ctx, token)
}

func (f *fakeStore) AcceptInvite(ctx context.Context, token uuid.UUID, member *models.TripMember, activity *models.Activity) error {
	return f.acceptInviteFn(ctx, token, member, activity)
}

// authedRequest builds a request carrying the given user's auth context and
// any path values the handler reads
func authedRequest(t *testing.T, method, target string, body any, userID uuid.UUID, pathValues map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	r := httptest.NewRequest(method, target, &buf)
	r = r.WithContext(middleware.WithUser(r.Context(), userID, "test@example.com"))
	for k, v := range pathValues {
		r.SetPathValue(k, v)
	}
	return r
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func testUser(id uuid.UUID, name string) *models.User {
	return &models.User{
		ID:           id,
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "x",
	}
}
