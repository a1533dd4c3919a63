package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/gucfolio/internal/model"
)

var _ model.TagStore = (*TagRepository)(nil)

type TagRepository struct {
	db DB
}

func NewTagRepository(db DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) GetByName(ctx context.Context, name string) (model.Tag, error) {
	const query = `SELECT id, name, created_at FROM tags WHERE name = $1`

	var tag model.Tag
	err := r.db.QueryRow(ctx, query, name).Scan(&tag.ID, &tag.Name, &tag.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Tag{}, model.ErrNotFound
		}
		return model.Tag{}, fmt.Errorf("failed to get tag by name: %w", err)
	}

	return tag, nil
}

func (r *TagRepository) Create(ctx context.Context, tag model.Tag) (model.Tag, error) {
	const query = `INSERT INTO tags (id, name, created_at) VALUES ($1, $2, $3)
				   RETURNING id, name, created_at`

	var saved model.Tag
	err := r.db.QueryRow(ctx, query, tag.ID, tag.Name, tag.CreatedAt).Scan(&saved.ID, &saved.Name, &saved.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Tag{}, fmt.Errorf("tag %q: %w", tag.Name, model.ErrConflict)
		}
		return model.Tag{}, fmt.Errorf("failed to create tag: %w", err)
	}

	return saved, nil
}
