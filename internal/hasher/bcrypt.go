// Package hasher provides the adaptive password hash used by the credential store.
package hasher

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/gucfolio/internal/model"
)

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt hashes passwords with bcrypt on a bounded set of workers so that
// bursts of signups or logins cannot occupy every CPU.
type Bcrypt struct {
	cost  int
	slots chan struct{}
}

// NewBcrypt creates a hasher with the given cost. workers <= 0 means GOMAXPROCS.
func NewBcrypt(cost, workers int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Bcrypt{
		cost:  cost,
		slots: make(chan struct{}, workers),
	}
}

// prehash maps a password of any length to 44 bytes, below bcrypt's 72-byte input limit.
func prehash(plaintext string) []byte {
	sum := sha256.Sum256([]byte(plaintext))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// Hash produces a salted bcrypt hash of the SHA-256 digest of the password.
func (h *Bcrypt) Hash(ctx context.Context, plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	var hash []byte
	err := h.run(ctx, func() error {
		var err error
		hash, err = bcrypt.GenerateFromPassword(prehash(plaintext), h.cost)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash.
func (h *Bcrypt) Verify(ctx context.Context, plaintext, hash string) (bool, error) {
	var match bool
	err := h.run(ctx, func() error {
		err := bcrypt.CompareHashAndPassword([]byte(hash), prehash(plaintext))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil
		}
		if err != nil {
			return err
		}
		match = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to verify password: %w", err)
	}

	return match, nil
}

// run executes fn on its own goroutine once a worker slot is free.
// The caller stops waiting when ctx is done; fn still finishes and frees its slot.
func (h *Bcrypt) run(ctx context.Context, fn func() error) error {
	select {
	case h.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	done := make(chan error, 1)
	go func() {
		defer func() { <-h.slots }()
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
