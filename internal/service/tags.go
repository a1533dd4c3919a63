package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dtroode/gucfolio/internal/logger"
	"github.com/dtroode/gucfolio/internal/metrics"
	"github.com/dtroode/gucfolio/internal/model"
)

// TagRegistry resolves tag names to stored tags, creating missing ones.
type TagRegistry struct {
	tags    model.TagStore
	logger  *logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewTagRegistry(tags model.TagStore, logger *logger.Logger, m *metrics.Metrics) *TagRegistry {
	return &TagRegistry{
		tags:    tags,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// ResolveTags splits raw on commas and finds or creates every name
// concurrently. All lookups finish before it returns; the first failure
// cancels the rest. The result keeps first-occurrence order without duplicates.
func (r *TagRegistry) ResolveTags(ctx context.Context, raw string) ([]model.Tag, error) {
	names := SplitTags(raw)
	if len(names) == 0 {
		return nil, nil
	}

	r.logger.Debug("Tag service: resolving tags",
		"count", len(names))

	resolved := make([]model.Tag, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			tag, err := r.findOrCreate(gctx, name)
			if err != nil {
				return err
			}
			resolved[i] = tag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.logger.Error("Tag service: failed to resolve tags",
			"error", err.Error())
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(resolved))
	out := make([]model.Tag, 0, len(resolved))
	for _, tag := range resolved {
		if _, ok := seen[tag.ID]; ok {
			continue
		}
		seen[tag.ID] = struct{}{}
		out = append(out, tag)
	}

	return out, nil
}

func (r *TagRegistry) findOrCreate(ctx context.Context, name string) (model.Tag, error) {
	tag, err := r.tags.GetByName(ctx, name)
	if err == nil {
		r.metrics.ObserveTag(metrics.TagFound)
		return tag, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		r.metrics.ObserveTag(metrics.TagFailed)
		return model.Tag{}, fmt.Errorf("failed to get tag %q: %w", name, err)
	}

	tag, err = r.tags.Create(ctx, model.Tag{ID: uuid.New(), Name: name, CreatedAt: r.now()})
	if err == nil {
		r.metrics.ObserveTag(metrics.TagCreated)
		r.logger.Info("Tag service: tag created",
			"name", name,
			"tag_id", tag.ID)
		return tag, nil
	}
	if !errors.Is(err, model.ErrConflict) {
		r.metrics.ObserveTag(metrics.TagFailed)
		return model.Tag{}, fmt.Errorf("failed to create tag %q: %w", name, err)
	}

	// Lost the race to a concurrent creator.
	tag, err = r.tags.GetByName(ctx, name)
	if err != nil {
		r.metrics.ObserveTag(metrics.TagFailed)
		return model.Tag{}, fmt.Errorf("failed to refetch tag %q: %w", name, err)
	}
	r.metrics.ObserveTag(metrics.TagConverged)
	return tag, nil
}
