package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/models"
)

func TestUpdateProfileBumpsUpdatedAt(t *testing.T) {
	userID := uuid.New()
	stale := time.Now().Add(-48 * time.Hour)

	var persisted *models.User
	store := &fakeStore{
		getUserByIDFn: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			u := testUser(userID, "alice")
			u.CreatedAt = stale
			u.UpdatedAt = stale
			return u, nil
		},
		updateUserFn: func(ctx context.Context, user *models.User) error {
			persisted = user
			return nil
		},
	}
	h := NewProfileHandler(store)

	rec := httptest.NewRecorder()
	r := authedRequest(t, http.MethodPut, "/api/v1/profile",
		dto.UpdateProfileRequest{Name: "Alice B"}, userID, nil)
	h.UpdateProfile(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if persisted == nil {
		t.Fatal("update never reached the store")
	}
	if persisted.Name != "Alice B" {
		t.Errorf("name = %q, want %q", persisted.Name, "Alice B")
	}
	if !persisted.UpdatedAt.After(stale) {
		t.Errorf("updated_at = %v, want bumped past %v", persisted.UpdatedAt, stale)
	}
	if persisted.CreatedAt != stale {
		t.Errorf("created_at = %v, must not change on update", persisted.CreatedAt)
	}
}

func TestUpdateProfilePasswordChecks(t *testing.T) {
	userID := uuid.New()
	store := &fakeStore{
		getUserByIDFn: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return testUser(userID, "alice"), nil
		},
	}
	h := NewProfileHandler(store)

	wrong := "wrong"
	newPass := "secret2"
	rec := httptest.NewRecorder()
	r := authedRequest(t, http.MethodPut, "/api/v1/profile",
		dto.UpdateProfileRequest{Name: "Alice", CurrentPassword: &wrong, NewPassword: &newPass},
		userID, nil)
	h.UpdateProfile(rec, r)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
