package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/config"
)

var testCfg = &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateToken(userID, "alice@example.com", testCfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token, testCfg)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "alice@example.com", testCfg)
	if err != nil {
		t.Fatal(err)
	}
	other := &config.JWTConfig{Secret: "different", AccessTokenTTL: time.Hour}
	if _, err := ValidateToken(token, other); err == nil {
		t.Error("expected validation to fail with the wrong secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	expired := &config.JWTConfig{Secret: testCfg.Secret, AccessTokenTTL: -time.Minute}
	token, err := GenerateToken(uuid.New(), "alice@example.com", expired)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateToken(token, testCfg); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateToken(userID, "alice@example.com", testCfg)
	if err != nil {
		t.Fatal(err)
	}

	var gotID uuid.UUID
	handler := RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}, testCfg)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, r)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}

	if gotID != userID {
		t.Errorf("context user id = %s, want %s", gotID, userID)
	}
}
