package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/gucfolio/internal/model"
)

var _ model.RevokedTokenStore = (*RevokedTokenRepository)(nil)

type RevokedTokenRepository struct {
	db DB
}

func NewRevokedTokenRepository(db DB) *RevokedTokenRepository {
	return &RevokedTokenRepository{db: db}
}

func (r *RevokedTokenRepository) Revoke(ctx context.Context, token model.RevokedToken) error {
	const query = `
		INSERT INTO invalid_tokens (token_hash, expires_at, revoked_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (token_hash) DO NOTHING`

	_, err := r.db.Exec(ctx, query, token.TokenHash, token.ExpiresAt, token.RevokedAt)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *RevokedTokenRepository) IsRevoked(ctx context.Context, tokenHash []byte) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM invalid_tokens WHERE token_hash = $1)`

	var revoked bool
	if err := r.db.QueryRow(ctx, query, tokenHash).Scan(&revoked); err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return revoked, nil
}

func (r *RevokedTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	const query = `DELETE FROM invalid_tokens WHERE expires_at < $1`

	cmd, err := r.db.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return cmd.RowsAffected(), nil
}
