package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/gucfolio/internal/apierrors"
	"github.com/dtroode/gucfolio/internal/logger"
	"github.com/dtroode/gucfolio/internal/metrics"
	"github.com/dtroode/gucfolio/internal/model"
)

// Session issues session tokens and checks them against the revocation
// ledger and the user's password change watermark.
type Session struct {
	manager model.TokenManager
	revoked model.RevokedTokenStore
	users   model.UserStore
	logger  *logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewSession(
	manager model.TokenManager,
	revoked model.RevokedTokenStore,
	users model.UserStore,
	logger *logger.Logger,
	m *metrics.Metrics,
) *Session {
	return &Session{
		manager: manager,
		revoked: revoked,
		users:   users,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

func (s *Session) Issue(userID uuid.UUID) (string, error) {
	token, err := s.manager.GenerateSessionToken(userID)
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a bearer token to its user. Checks run in order:
// signature and expiry, revocation, user lookup, password change.
func (s *Session) Authenticate(ctx context.Context, token string) (model.User, error) {
	claims, err := s.manager.ParseSessionToken(token)
	if err != nil {
		s.logger.Debug("Session service: rejected token", "error", err.Error())
		return model.User{}, apierrors.NewErrUnauthorized()
	}

	revoked, err := s.revoked.IsRevoked(ctx, hashToken(token))
	if err != nil {
		s.logger.Error("Session service: failed to check revocation",
			"user_id", claims.UserID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to check revocation: %w", err)
	}
	if revoked {
		s.logger.Debug("Session service: revoked token presented", "user_id", claims.UserID)
		return model.User{}, apierrors.NewErrUnauthorized()
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Debug("Session service: token for unknown user", "user_id", claims.UserID)
			return model.User{}, apierrors.NewErrUnauthorized()
		}
		s.logger.Error("Session service: failed to load user",
			"user_id", claims.UserID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if claims.IssuedAt.Before(user.PasswordChangeDate.Truncate(time.Second)) {
		s.logger.Debug("Session service: token predates password change", "user_id", user.ID)
		return model.User{}, apierrors.NewErrUnauthorized()
	}

	return user, nil
}

// Revoke adds the token to the ledger. Revoking twice is not an error.
func (s *Session) Revoke(ctx context.Context, token string) error {
	claims, err := s.manager.ParseSessionToken(token)
	if err != nil {
		return apierrors.NewErrUnauthorized()
	}

	err = s.revoked.Revoke(ctx, model.RevokedToken{
		TokenHash: hashToken(token),
		ExpiresAt: claims.ExpiresAt,
		RevokedAt: s.now(),
	})
	if err != nil {
		s.logger.Error("Session service: failed to revoke token",
			"user_id", claims.UserID,
			"error", err.Error())
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.logger.Info("Session service: token revoked", "user_id", claims.UserID)
	return nil
}

// Prune deletes ledger rows for tokens that already expired.
func (s *Session) Prune(ctx context.Context) (int64, error) {
	n, err := s.revoked.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to prune revoked tokens: %w", err)
	}
	s.metrics.ObservePruned(n)
	return n, nil
}

// RunPruner calls Prune every interval until ctx is done.
func (s *Session) RunPruner(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.Prune(ctx)
			if err != nil {
				s.logger.Error("Session service: prune failed", "error", err.Error())
				continue
			}
			if n > 0 {
				s.logger.Info("Session service: pruned revoked tokens", "count", n)
			}
		}
	}
}

func hashToken(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}
