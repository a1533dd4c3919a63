package model

import (
	"context"
	"time"
)

// RevokedTokenStore persists logged-out session tokens.
type RevokedTokenStore interface {
	// Revoke records the token hash. Revoking twice is not an error.
	Revoke(ctx context.Context, token RevokedToken) error
	IsRevoked(ctx context.Context, tokenHash []byte) (bool, error)
	// DeleteExpired removes rows whose token expired before the given time.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type RevokedToken struct {
	TokenHash []byte
	ExpiresAt time.Time
	RevokedAt time.Time
}
