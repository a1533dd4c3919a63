package model

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
)

// PageSize is the fixed number of entries per listing page.
const PageSize = 10

// MaxPage is the largest 1-based page number whose row offset fits in an int.
const MaxPage = math.MaxInt/PageSize + 1

// ValidPage reports whether page is a 1-based page number within range.
func ValidPage(page int) bool {
	return page >= 1 && page <= MaxPage
}

// SummaryItemsPerUser limits how many items each user shows in the summary feed.
const SummaryItemsPerUser = 2

// WorkItemStore defines persistence operations for work items.
type WorkItemStore interface {
	// Create stores the item and links its tags in one transaction.
	Create(ctx context.Context, item WorkItem) (WorkItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (WorkItem, error)
	// Update rewrites the item fields and replaces its tag links.
	Update(ctx context.Context, item WorkItem) (WorkItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]WorkItem, error)
	ListByTag(ctx context.Context, tagName string, offset, limit int) ([]WorkItem, int, error)
	// ListOwners returns users having at least one item, newest activity first, and their total count.
	ListOwners(ctx context.Context, offset, limit int) ([]User, int, error)
}

// WorkItem is a portfolio entry.
type WorkItem struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	// CoverImage is the object storage key, empty when no cover was uploaded.
	CoverImage string
	LiveDemo   string
	GithubRepo string
	Tags       []Tag
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Upload is a file received with a work item submission.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// CreateWorkItemParams contains parameters to create a work item.
type CreateWorkItemParams struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	LiveDemo    string
	GithubRepo  string
	RawTags     string
	Cover       *Upload
}

// UpdateWorkItemParams contains a partial update. Nil fields are left unchanged.
type UpdateWorkItemParams struct {
	ItemID      uuid.UUID
	OwnerID     uuid.UUID
	Title       *string
	Description *string
	LiveDemo    *string
	GithubRepo  *string
	RawTags     *string
	Cover       *Upload
}

// PortfolioSummary is one entry of the public feed.
type PortfolioSummary struct {
	User  PublicProfile
	Items []WorkItem
}

// Page is a slice of results together with the total count.
type Page[T any] struct {
	Count   int
	Results []T
}

// Profile is a user's public page with all of their items, newest first.
type Profile struct {
	User  PublicProfile
	Items []WorkItem
}
