package client

import (
	"testing"
	"time"

	"expenseboard/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSessionFromToken(t *testing.T) {
	exp := time.Now().Add(24 * time.Hour)
	token := signedToken(t, jwt.MapClaims{
		"user_id":  float64(4),
		"username": "ravi",
		"role":     domain.RoleAdmin,
		"exp":      exp.Unix(),
	})

	s, err := SessionFromToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Username != "ravi" {
		t.Fatalf("username = %q", s.Username)
	}
	if !s.IsAdmin() {
		t.Fatal("expected admin session")
	}
	if !s.Valid() {
		t.Fatal("unexpired session should be valid")
	}
	if s.ExpiresAt.Unix() != exp.Unix() {
		t.Fatalf("exp = %v, want %v", s.ExpiresAt, exp)
	}
}

func TestUnknownRoleDegradesToGuest(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"username": "ravi",
		"role":     "superuser",
	})

	s, err := SessionFromToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Role != domain.RoleGuest {
		t.Fatalf("role = %q, want guest", s.Role)
	}
	if s.Valid() {
		t.Fatal("guest session must not be valid")
	}
}

func TestExpiredSessionInvalid(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"username": "ravi",
		"role":     domain.RoleUser,
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})

	s, err := SessionFromToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Valid() {
		t.Fatal("expired session must not be valid")
	}
}

func TestGarbageTokenFails(t *testing.T) {
	if _, err := SessionFromToken("not-a-jwt"); err == nil {
		t.Fatal("expected parse error")
	}
}
