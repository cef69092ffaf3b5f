package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mmynk/settleup/internal/models"
)

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "user-1", Email: "alice@example.com"}

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "alice@example.com" {
		t.Errorf("claims = %+v", claims)
	}

	other := NewJWTManager("other-secret", time.Hour)
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("token signed with another key: expected ErrInvalidToken, got %v", err)
	}

	expired := NewJWTManager("test-secret", -time.Minute)
	old, err := expired.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := m.Validate(old); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token: expected ErrInvalidToken, got %v", err)
	}

	if _, err := m.Validate("garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTManager_RegisteredClaims(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate(&models.User{ID: "user-1", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Issuer != Issuer || claims.Subject != "user-1" || claims.ID == "" {
		t.Errorf("registered claims = %+v", claims.RegisteredClaims)
	}
}

func TestJWTManager_RejectsForeignTokens(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	now := time.Now()

	sign := func(method jwt.SigningMethod, key any, issuer string) string {
		t.Helper()
		claims := &Claims{
			UserID: "user-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("SignedString failed: %v", err)
		}
		return s
	}

	tests := []struct {
		name  string
		token string
	}{
		{"other issuer", sign(jwt.SigningMethodHS256, []byte("test-secret"), "someone-else")},
		{"other HMAC size", sign(jwt.SigningMethodHS512, []byte("test-secret"), Issuer)},
		{"unsigned", sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, Issuer)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Validate(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
