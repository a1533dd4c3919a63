package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/gucfolio/internal/model"
)

const uploadsPath = "/uploads/"

type itemView struct {
	ID          uuid.UUID   `json:"id"`
	Owner       uuid.UUID   `json:"owner"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CoverImage  string      `json:"coverImage,omitempty"`
	LiveDemo    string      `json:"liveDemo,omitempty"`
	GithubRepo  string      `json:"githubRepo,omitempty"`
	Tags        []model.Tag `json:"tags"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func newItemView(item model.WorkItem) itemView {
	v := itemView{
		ID:          item.ID,
		Owner:       item.OwnerID,
		Title:       item.Title,
		Description: item.Description,
		LiveDemo:    item.LiveDemo,
		GithubRepo:  item.GithubRepo,
		Tags:        item.Tags,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if v.Tags == nil {
		v.Tags = []model.Tag{}
	}
	if item.CoverImage != "" {
		v.CoverImage = uploadsPath + item.CoverImage
	}
	return v
}

func newItemViews(items []model.WorkItem) []itemView {
	views := make([]itemView, len(items))
	for i, item := range items {
		views[i] = newItemView(item)
	}
	return views
}

type summaryView struct {
	User  model.PublicProfile `json:"user"`
	Items []itemView          `json:"items"`
}

type pageView[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

type profileView struct {
	model.PublicProfile
	Items []itemView `json:"items"`
}
