package model

import "context"

// PasswordHasher hashes and verifies password secrets.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	// Verify returns false on mismatch and an error only when the hash is unusable.
	Verify(ctx context.Context, plaintext, hash string) (bool, error)
}
