package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TagStore defines persistence operations for tags.
type TagStore interface {
	GetByName(ctx context.Context, name string) (Tag, error)
	// Create returns ErrConflict when a tag with the same name already exists.
	Create(ctx context.Context, tag Tag) (Tag, error)
}

// Tag is a normalized label attached to work items.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}
