package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/gucfolio/internal/model"
)

var _ model.WorkItemStore = (*WorkItemRepository)(nil)

const workItemColumns = `wi.id, wi.owner_id, wi.title, wi.description, wi.cover_image,
	wi.live_demo, wi.github_repo, wi.created_at, wi.updated_at`

type WorkItemRepository struct {
	db DB
}

func NewWorkItemRepository(db DB) *WorkItemRepository {
	return &WorkItemRepository{db: db}
}

func scanWorkItem(row pgx.Row) (model.WorkItem, error) {
	var item model.WorkItem
	err := row.Scan(
		&item.ID, &item.OwnerID, &item.Title, &item.Description, &item.CoverImage,
		&item.LiveDemo, &item.GithubRepo, &item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

func (r *WorkItemRepository) Create(ctx context.Context, item model.WorkItem) (model.WorkItem, error) {
	query := `
		WITH wi AS (
			INSERT INTO work_items (id, owner_id, title, description, cover_image, live_demo, github_repo, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		)
		SELECT ` + workItemColumns + ` FROM wi`

	var saved model.WorkItem
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		saved, err = scanWorkItem(tx.QueryRow(ctx, query,
			item.ID, item.OwnerID, item.Title, item.Description, item.CoverImage,
			item.LiveDemo, item.GithubRepo, item.CreatedAt, item.UpdatedAt,
		))
		if err != nil {
			return err
		}
		return linkTags(ctx, tx, saved.ID, item.Tags)
	})
	if err != nil {
		return model.WorkItem{}, fmt.Errorf("failed to create work item: %w", err)
	}

	saved.Tags = item.Tags
	return saved, nil
}

func (r *WorkItemRepository) GetByID(ctx context.Context, id uuid.UUID) (model.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items wi WHERE wi.id = $1`

	item, err := scanWorkItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.WorkItem{}, model.ErrNotFound
		}
		return model.WorkItem{}, fmt.Errorf("failed to get work item: %w", err)
	}

	items := []model.WorkItem{item}
	if err := r.attachTags(ctx, items); err != nil {
		return model.WorkItem{}, err
	}

	return items[0], nil
}

func (r *WorkItemRepository) Update(ctx context.Context, item model.WorkItem) (model.WorkItem, error) {
	query := `
		WITH wi AS (
			UPDATE work_items SET title = $2, description = $3, cover_image = $4, live_demo = $5,
				github_repo = $6, updated_at = $7
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + workItemColumns + ` FROM wi`

	var saved model.WorkItem
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		saved, err = scanWorkItem(tx.QueryRow(ctx, query,
			item.ID, item.Title, item.Description, item.CoverImage,
			item.LiveDemo, item.GithubRepo, item.UpdatedAt,
		))
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM work_item_tags WHERE work_item_id = $1`, item.ID); err != nil {
			return err
		}
		return linkTags(ctx, tx, item.ID, item.Tags)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.WorkItem{}, model.ErrNotFound
		}
		return model.WorkItem{}, fmt.Errorf("failed to update work item: %w", err)
	}

	saved.Tags = item.Tags
	return saved, nil
}

func (r *WorkItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM work_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ListByOwner returns the owner's newest items first. A zero limit returns all of them.
func (r *WorkItemRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]model.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items wi
		WHERE wi.owner_id = $1
		ORDER BY wi.created_at DESC, wi.id
		LIMIT NULLIF($2, 0)`

	items, err := r.queryItems(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list work items by owner: %w", err)
	}
	if err := r.attachTags(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *WorkItemRepository) ListByTag(ctx context.Context, tagName string, offset, limit int) ([]model.WorkItem, int, error) {
	const countQuery = `
		SELECT count(*) FROM work_item_tags wit
		JOIN tags t ON t.id = wit.tag_id
		WHERE t.name = $1`

	var count int
	if err := r.db.QueryRow(ctx, countQuery, tagName).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count work items by tag: %w", err)
	}

	query := `SELECT ` + workItemColumns + ` FROM work_items wi
		JOIN work_item_tags wit ON wit.work_item_id = wi.id
		JOIN tags t ON t.id = wit.tag_id
		WHERE t.name = $1
		ORDER BY wi.created_at DESC, wi.id
		OFFSET $2 LIMIT $3`

	items, err := r.queryItems(ctx, query, tagName, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work items by tag: %w", err)
	}
	if err := r.attachTags(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (r *WorkItemRepository) ListOwners(ctx context.Context, offset, limit int) ([]model.User, int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT count(DISTINCT owner_id) FROM work_items`).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count portfolio owners: %w", err)
	}

	query := `SELECT ` + userColumns + ` FROM users
		JOIN (SELECT owner_id, max(created_at) AS last_item FROM work_items GROUP BY owner_id) w
			ON w.owner_id = users.id
		ORDER BY w.last_item DESC, users.id
		OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list portfolio owners: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan portfolio owner: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list portfolio owners: %w", err)
	}

	return users, count, nil
}

func (r *WorkItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]model.WorkItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.WorkItem
	for rows.Next() {
		item, err := scanWorkItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// attachTags fills Tags of every item in place, preserving link order.
func (r *WorkItemRepository) attachTags(ctx context.Context, items []model.WorkItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	const query = `
		SELECT wit.work_item_id, t.id, t.name, t.created_at
		FROM work_item_tags wit
		JOIN tags t ON t.id = wit.tag_id
		WHERE wit.work_item_id = ANY($1)
		ORDER BY wit.work_item_id, wit.position`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load work item tags: %w", err)
	}
	defer rows.Close()

	byItem := make(map[uuid.UUID][]model.Tag, len(items))
	for rows.Next() {
		var itemID uuid.UUID
		var tag model.Tag
		if err := rows.Scan(&itemID, &tag.ID, &tag.Name, &tag.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan work item tag: %w", err)
		}
		byItem[itemID] = append(byItem[itemID], tag)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to load work item tags: %w", err)
	}

	for i := range items {
		items[i].Tags = byItem[items[i].ID]
	}
	return nil
}

func linkTags(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, tags []model.Tag) error {
	const query = `INSERT INTO work_item_tags (work_item_id, tag_id, position) VALUES ($1, $2, $3)`

	for i, tag := range tags {
		if _, err := tx.Exec(ctx, query, itemID, tag.ID, i); err != nil {
			return fmt.Errorf("failed to link tag %q: %w", tag.Name, err)
		}
	}
	return nil
}
