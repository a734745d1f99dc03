package client

import (
	"time"

	"expenseboard/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the identity derived from a bearer token. The client only
// reads the token payload; signature verification is the server's job and
// is repeated on every request anyway.
type Session struct {
	Username  string
	Role      string
	ExpiresAt time.Time
}

// SessionFromToken decodes the token payload without verifying the
// signature. Unknown or missing roles degrade to guest so route gating
// stays deny-by-default.
func SessionFromToken(token string) (Session, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Session{}, err
	}

	s := Session{Role: domain.RoleGuest}
	if name, ok := claims["username"].(string); ok {
		s.Username = name
	}
	if role, ok := claims["role"].(string); ok {
		switch role {
		case domain.RoleUser, domain.RoleAdmin:
			s.Role = role
		}
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	return s, nil
}

// Valid reports whether the session is usable right now.
func (s Session) Valid() bool {
	if s.Username == "" || s.Role == domain.RoleGuest {
		return false
	}
	return s.ExpiresAt.IsZero() || time.Now().Before(s.ExpiresAt)
}

// IsAdmin gates the admin console routes.
func (s Session) IsAdmin() bool {
	return s.Role == domain.RoleAdmin
}
