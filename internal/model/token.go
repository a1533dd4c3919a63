package model

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified payload of a signed token.
// Session tokens carry UserID, reset tokens carry Email.
type Claims struct {
	UserID    uuid.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager mints and verifies stateless signed tokens.
type TokenManager interface {
	GenerateSessionToken(userID uuid.UUID) (string, error)
	GenerateResetToken(email string, issuedAt time.Time) (string, error)
	// Verify checks signature and expiry only.
	Verify(token string) (Claims, error)
	ParseSessionToken(token string) (Claims, error)
	ParseResetToken(token string) (Claims, error)
}
