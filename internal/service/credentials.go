package service

import (
	"context"
	"errors"

	"github.com/dtroode/gucfolio/internal/model"
)

// ErrNoPassword is returned when creating a user without any secret.
var ErrNoPassword = errors.New("user has no password")

var _ model.UserStore = (*CredentialStore)(nil)

// CredentialStore is a UserStore that hashes a password set with
// User.SetPassword right before it is persisted. Saves without a pending
// password keep the stored hash untouched.
type CredentialStore struct {
	model.UserStore
	hasher model.PasswordHasher
}

func NewCredentialStore(users model.UserStore, hasher model.PasswordHasher) *CredentialStore {
	return &CredentialStore{UserStore: users, hasher: hasher}
}

func (s *CredentialStore) Create(ctx context.Context, user model.User) (model.User, error) {
	if err := s.hashPending(ctx, &user); err != nil {
		return model.User{}, err
	}
	if user.PasswordHash == "" {
		return model.User{}, ErrNoPassword
	}
	return s.UserStore.Create(ctx, user)
}

func (s *CredentialStore) Update(ctx context.Context, user model.User) (model.User, error) {
	if err := s.hashPending(ctx, &user); err != nil {
		return model.User{}, err
	}
	return s.UserStore.Update(ctx, user)
}

// Verify checks plaintext against the user's stored hash.
func (s *CredentialStore) Verify(ctx context.Context, user model.User, plaintext string) (bool, error) {
	return s.hasher.Verify(ctx, plaintext, user.PasswordHash)
}

func (s *CredentialStore) hashPending(ctx context.Context, user *model.User) error {
	plaintext, ok := user.PendingPassword()
	if !ok {
		return nil
	}

	hash, err := s.hasher.Hash(ctx, plaintext)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.ClearPendingPassword()
	return nil
}
