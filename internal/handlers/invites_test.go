package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
)

func inviteFixture(invite *models.Invite, user *models.User, acceptErr error) *fakeStore {
	return &fakeStore{
		getInviteFn: func(ctx context.Context, token uuid.UUID) (*models.Invite, error) {
			if invite == nil {
				return nil, storage.ErrNotFound
			}
			return invite, nil
		},
		getUserByIDFn: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return user, nil
		},
		acceptInviteFn: func(ctx context.Context, token uuid.UUID, member *models.TripMember, activity *models.Activity) error {
			return acceptErr
		},
	}
}

func TestAcceptInvite(t *testing.T) {
	userID := uuid.New()
	user := testUser(userID, "carol")
	fresh := func() *models.Invite {
		return &models.Invite{
			Token:     uuid.New(),
			TripID:    uuid.New(),
			Email:     user.Email,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}
	}

	tests := []struct {
		name      string
		invite    *models.Invite
		acceptErr error
		mutate    func(i *models.Invite)
		want      int
	}{
		{"success", fresh(), nil, nil, http.StatusOK},
		{"unknown token", nil, nil, nil, http.StatusNotFound},
		{"expired", fresh(), nil, func(i *models.Invite) {
			i.ExpiresAt = time.Now().Add(-time.Hour)
		}, http.StatusConflict},
		{"wrong email", fresh(), nil, func(i *models.Invite) {
			i.Email = "someone.else@example.com"
		}, http.StatusForbidden},
		{"already used", fresh(), storage.ErrConflict, nil, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mutate != nil {
				tt.mutate(tt.invite)
			}
			h := NewInviteHandler(inviteFixture(tt.invite, user, tt.acceptErr))

			token := uuid.New()
			if tt.invite != nil {
				token = tt.invite.Token
			}
			rec := httptest.NewRecorder()
			r := authedRequest(t, http.MethodPost, "/api/v1/invites/"+token.String()+"/accept", nil, userID,
				map[string]string{"token": token.String()})
			h.AcceptInvite(rec, r)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestValidateInvite(t *testing.T) {
	trip := &models.Trip{ID: uuid.New(), Title: "Road trip"}

	makeStore := func(invite *models.Invite) *fakeStore {
		f := inviteFixture(invite, nil, nil)
		f.getTripFn = func(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
			return trip, nil
		}
		return f
	}

	t.Run("pending invite is valid", func(t *testing.T) {
		invite := &models.Invite{
			Token: uuid.New(), TripID: trip.ID,
			Email: "new@example.com", ExpiresAt: time.Now().Add(time.Hour),
		}
		h := NewInviteHandler(makeStore(invite))

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/invites/"+invite.Token.String(), nil)
		r.SetPathValue("token", invite.Token.String())
		h.ValidateInvite(rec, r)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		resp := decodeBody[map[string]any](t, rec)
		if resp["valid"] != true {
			t.Errorf("valid = %v, want true", resp["valid"])
		}
		if resp["trip_title"] != "Road trip" {
			t.Errorf("trip_title = %v, want Road trip", resp["trip_title"])
		}
	})

	t.Run("used invite is invalid", func(t *testing.T) {
		invite := &models.Invite{
			Token: uuid.New(), TripID: trip.ID, Used: true,
			Email: "new@example.com", ExpiresAt: time.Now().Add(time.Hour),
		}
		h := NewInviteHandler(makeStore(invite))

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/invites/"+invite.Token.String(), nil)
		r.SetPathValue("token", invite.Token.String())
		h.ValidateInvite(rec, r)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		resp := decodeBody[map[string]any](t, rec)
		if resp["valid"] != false {
			t.Errorf("valid = %v, want false", resp["valid"])
		}
	})
}
