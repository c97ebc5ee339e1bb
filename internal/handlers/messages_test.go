package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/models"
)

func TestCreateMessageLimits(t *testing.T) {
	tripID := uuid.New()
	userID := uuid.New()

	store := &fakeStore{
		hasTripAccessFn: func(ctx context.Context, tid, uid uuid.UUID) (bool, error) {
			return true, nil
		},
		getUserByIDFn: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return testUser(id, "alice"), nil
		},
	}
	created := false
	h := NewMessageHandler(store)

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "   ", http.StatusBadRequest},
		{"too long", strings.Repeat("a", models.MaxMessageLength+1), http.StatusBadRequest},
		{"at the cap", strings.Repeat("a", models.MaxMessageLength), http.StatusCreated},
		{"multibyte at the cap", strings.Repeat("ç", models.MaxMessageLength), http.StatusCreated},
		{"multibyte over the cap", strings.Repeat("ç", models.MaxMessageLength+1), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store.createMessageFn = func(ctx context.Context, msg *models.ChatMessage) error {
				created = true
				return nil
			}

			rec := httptest.NewRecorder()
			r := authedRequest(t, http.MethodPost, "/api/v1/trips/"+tripID.String()+"/messages",
				dto.CreateMessageRequest{Content: tt.content}, userID,
				map[string]string{"id": tripID.String()})
			h.CreateMessage(rec, r)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
	if !created {
		t.Error("valid message never reached the store")
	}
}
