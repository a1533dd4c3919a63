package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dtroode/gucfolio/internal/apierrors"
	"github.com/dtroode/gucfolio/internal/logger"
	"github.com/dtroode/gucfolio/internal/model"
)

const (
	coverPrefix      = "covers/"
	coverRandomBytes = 48
	summaryWorkers   = 4
)

// Portfolio serves the public feed and owner-only item management.
type Portfolio struct {
	items   model.WorkItemStore
	users   model.UserStore
	tags    *TagRegistry
	storage model.Storage
	logger  *logger.Logger
	now     func() time.Time
	random  func([]byte) (int, error)
}

func NewPortfolio(
	items model.WorkItemStore,
	users model.UserStore,
	tags *TagRegistry,
	storage model.Storage,
	logger *logger.Logger,
) *Portfolio {
	return &Portfolio{
		items:   items,
		users:   users,
		tags:    tags,
		storage: storage,
		logger:  logger,
		now:     time.Now,
		random:  rand.Read,
	}
}

// Summary returns one page of users that have items, each with their latest
// items. offset is the 1-based page number.
func (p *Portfolio) Summary(ctx context.Context, offset int) (model.Page[model.PortfolioSummary], error) {
	if !model.ValidPage(offset) {
		return model.Page[model.PortfolioSummary]{}, apierrors.NewErrBadOffset()
	}

	owners, count, err := p.items.ListOwners(ctx, (offset-1)*model.PageSize, model.PageSize)
	if err != nil {
		p.logger.Error("Portfolio service: failed to list owners",
			"offset", offset,
			"error", err.Error())
		return model.Page[model.PortfolioSummary]{}, fmt.Errorf("failed to list owners: %w", err)
	}

	results := make([]model.PortfolioSummary, len(owners))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(summaryWorkers)
	for i, owner := range owners {
		g.Go(func() error {
			items, err := p.items.ListByOwner(gctx, owner.ID, model.SummaryItemsPerUser)
			if err != nil {
				return fmt.Errorf("failed to list items of %s: %w", owner.ID, err)
			}
			results[i] = model.PortfolioSummary{User: owner.Public(), Items: items}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		p.logger.Error("Portfolio service: failed to build summary",
			"offset", offset,
			"error", err.Error())
		return model.Page[model.PortfolioSummary]{}, err
	}

	return model.Page[model.PortfolioSummary]{Count: count, Results: results}, nil
}

func (p *Portfolio) ListByTag(ctx context.Context, tag string, offset int) (model.Page[model.WorkItem], error) {
	if !model.ValidPage(offset) {
		return model.Page[model.WorkItem]{}, apierrors.NewErrBadOffset()
	}

	items, count, err := p.items.ListByTag(ctx, strings.TrimSpace(tag), (offset-1)*model.PageSize, model.PageSize)
	if err != nil {
		p.logger.Error("Portfolio service: failed to list items by tag",
			"tag", tag,
			"error", err.Error())
		return model.Page[model.WorkItem]{}, fmt.Errorf("failed to list items by tag: %w", err)
	}

	if items == nil {
		items = []model.WorkItem{}
	}
	return model.Page[model.WorkItem]{Count: count, Results: items}, nil
}

func (p *Portfolio) GetItem(ctx context.Context, id uuid.UUID) (model.WorkItem, error) {
	item, err := p.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.WorkItem{}, apierrors.NewErrItemNotFound()
		}
		p.logger.Error("Portfolio service: failed to get item",
			"item_id", id,
			"error", err.Error())
		return model.WorkItem{}, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

func (p *Portfolio) GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	user, err := p.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Profile{}, apierrors.NewErrUserNotFound()
		}
		p.logger.Error("Portfolio service: failed to get user",
			"user_id", userID,
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to get user: %w", err)
	}

	items, err := p.items.ListByOwner(ctx, userID, 0)
	if err != nil {
		p.logger.Error("Portfolio service: failed to list user items",
			"user_id", userID,
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to list user items: %w", err)
	}
	if items == nil {
		items = []model.WorkItem{}
	}

	return model.Profile{User: user.Public(), Items: items}, nil
}

func (p *Portfolio) CreateItem(ctx context.Context, params model.CreateWorkItemParams) (model.WorkItem, error) {
	p.logger.Debug("Portfolio service: creating item",
		"owner_id", params.OwnerID)

	item := model.WorkItem{
		ID:          uuid.New(),
		OwnerID:     params.OwnerID,
		Title:       strings.TrimSpace(params.Title),
		Description: params.Description,
		LiveDemo:    strings.TrimSpace(params.LiveDemo),
		GithubRepo:  strings.TrimSpace(params.GithubRepo),
	}
	if err := validateItem(item, params.Cover != nil); err != nil {
		return model.WorkItem{}, err
	}

	tags, err := p.tags.ResolveTags(ctx, params.RawTags)
	if err != nil {
		return model.WorkItem{}, fmt.Errorf("failed to resolve tags: %w", err)
	}
	item.Tags = tags

	if params.Cover != nil {
		key, err := p.uploadCover(ctx, params.Cover)
		if err != nil {
			return model.WorkItem{}, err
		}
		item.CoverImage = key
	}

	now := p.now()
	item.CreatedAt = now
	item.UpdatedAt = now

	saved, err := p.items.Create(ctx, item)
	if err != nil {
		p.logger.Error("Portfolio service: failed to create item",
			"owner_id", params.OwnerID,
			"error", err.Error())
		p.discardCover(ctx, item.CoverImage)
		return model.WorkItem{}, fmt.Errorf("failed to create item: %w", err)
	}

	p.logger.Info("Portfolio service: item created",
		"item_id", saved.ID,
		"owner_id", saved.OwnerID)

	return saved, nil
}

func (p *Portfolio) UpdateItem(ctx context.Context, params model.UpdateWorkItemParams) (model.WorkItem, error) {
	p.logger.Debug("Portfolio service: updating item",
		"item_id", params.ItemID,
		"owner_id", params.OwnerID)

	item, err := p.ownedItem(ctx, params.ItemID, params.OwnerID)
	if err != nil {
		return model.WorkItem{}, err
	}

	if params.Title != nil {
		item.Title = strings.TrimSpace(*params.Title)
	}
	if params.Description != nil {
		item.Description = *params.Description
	}
	if params.LiveDemo != nil {
		item.LiveDemo = strings.TrimSpace(*params.LiveDemo)
	}
	if params.GithubRepo != nil {
		item.GithubRepo = strings.TrimSpace(*params.GithubRepo)
	}
	if err := validateItem(item, params.Cover != nil || item.CoverImage != ""); err != nil {
		return model.WorkItem{}, err
	}

	if params.RawTags != nil {
		tags, err := p.tags.ResolveTags(ctx, *params.RawTags)
		if err != nil {
			return model.WorkItem{}, fmt.Errorf("failed to resolve tags: %w", err)
		}
		item.Tags = tags
	}

	oldCover := item.CoverImage
	if params.Cover != nil {
		key, err := p.uploadCover(ctx, params.Cover)
		if err != nil {
			return model.WorkItem{}, err
		}
		item.CoverImage = key
	}
	item.UpdatedAt = p.now()

	saved, err := p.items.Update(ctx, item)
	if err != nil {
		if item.CoverImage != oldCover {
			p.discardCover(ctx, item.CoverImage)
		}
		if errors.Is(err, model.ErrNotFound) {
			return model.WorkItem{}, apierrors.NewErrItemNotFound()
		}
		p.logger.Error("Portfolio service: failed to update item",
			"item_id", item.ID,
			"error", err.Error())
		return model.WorkItem{}, fmt.Errorf("failed to update item: %w", err)
	}

	if item.CoverImage != oldCover {
		p.discardCover(ctx, oldCover)
	}

	p.logger.Info("Portfolio service: item updated",
		"item_id", saved.ID)

	return saved, nil
}

func (p *Portfolio) DeleteItem(ctx context.Context, itemID, ownerID uuid.UUID) error {
	item, err := p.ownedItem(ctx, itemID, ownerID)
	if err != nil {
		return err
	}

	if err := p.items.Delete(ctx, itemID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewErrItemNotFound()
		}
		p.logger.Error("Portfolio service: failed to delete item",
			"item_id", itemID,
			"error", err.Error())
		return fmt.Errorf("failed to delete item: %w", err)
	}

	p.discardCover(ctx, item.CoverImage)

	p.logger.Info("Portfolio service: item deleted",
		"item_id", itemID,
		"owner_id", ownerID)

	return nil
}

// OpenCover opens a stored cover image. The caller closes the body.
func (p *Portfolio) OpenCover(ctx context.Context, key string) (model.Object, error) {
	if !strings.HasPrefix(key, coverPrefix) || path.Clean(key) != key {
		return model.Object{}, apierrors.NewErrFileNotFound()
	}

	obj, err := p.storage.Download(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Object{}, apierrors.NewErrFileNotFound()
		}
		p.logger.Error("Portfolio service: failed to open cover",
			"key", key,
			"error", err.Error())
		return model.Object{}, fmt.Errorf("failed to open cover: %w", err)
	}
	return obj, nil
}

func (p *Portfolio) ownedItem(ctx context.Context, itemID, ownerID uuid.UUID) (model.WorkItem, error) {
	item, err := p.GetItem(ctx, itemID)
	if err != nil {
		return model.WorkItem{}, err
	}
	if item.OwnerID != ownerID {
		p.logger.Info("Portfolio service: permission denied",
			"item_id", itemID,
			"user_id", ownerID)
		return model.WorkItem{}, apierrors.NewErrPermissionDenied()
	}
	return item, nil
}

// validateItem lists every failed rule at once.
func validateItem(item model.WorkItem, hasCover bool) error {
	var details []string
	if item.Title == "" {
		details = append(details, apierrors.MsgEmptyTitle)
	}
	if !hasCover && item.LiveDemo == "" && item.GithubRepo == "" {
		details = append(details, apierrors.MsgEmptyWork)
	}
	if item.LiveDemo != "" && !IsWebURL(item.LiveDemo) {
		details = append(details, apierrors.MsgBadDemo)
	}
	if item.GithubRepo != "" && !IsWebURL(item.GithubRepo) {
		details = append(details, apierrors.MsgBadRepo)
	}
	if len(details) > 0 {
		return apierrors.NewValidation(details...)
	}
	return nil
}

func (p *Portfolio) uploadCover(ctx context.Context, upload *model.Upload) (string, error) {
	key, err := p.coverKey(upload.Filename)
	if err != nil {
		return "", err
	}

	if err := p.storage.Upload(ctx, key, upload.Reader, upload.Size, upload.ContentType); err != nil {
		p.logger.Error("Portfolio service: failed to upload cover",
			"key", key,
			"error", err.Error())
		return "", fmt.Errorf("failed to upload cover: %w", err)
	}
	return key, nil
}

// coverKey builds covers/<unix millis><96 hex chars><ext>.
func (p *Portfolio) coverKey(filename string) (string, error) {
	buf := make([]byte, coverRandomBytes)
	if _, err := p.random(buf); err != nil {
		return "", fmt.Errorf("failed to generate cover name: %w", err)
	}
	ext := strings.ToLower(path.Ext(filename))
	return coverPrefix + strconv.FormatInt(p.now().UnixMilli(), 10) + hex.EncodeToString(buf) + ext, nil
}

func (p *Portfolio) discardCover(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := p.storage.Delete(ctx, key); err != nil {
		p.logger.Error("Portfolio service: failed to delete cover",
			"key", key,
			"error", err.Error())
	}
}
