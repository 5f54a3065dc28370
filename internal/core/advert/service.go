// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package advert

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/medira/internal/platform/cache"
	"github.com/taibuivan/medira/internal/platform/constants"
	"github.com/taibuivan/medira/internal/platform/dberr"
	"github.com/taibuivan/medira/internal/platform/document"
)

type Service struct {
	repository Repository
	cache      *cache.Cache
	logger     *slog.Logger
}

func NewService(repository Repository, cache *cache.Cache, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		cache:      cache,
		logger:     logger,
	}
}

// Create inserts a new advertisement request owned by the authenticated seller.
// New requests start without a status; promotion is an Admin decision.
func (service *Service) Create(ctx context.Context, input Advertisement, authorEmail string) (string, error) {
	input.AuthorEmail = authorEmail
	input.Status = ""
	input.CreatedAt = time.Now().UTC()

	insertedID, err := service.repository.Insert(ctx, input)
	if err != nil {
		return "", err
	}

	service.logger.Info("advert_created",
		slog.String("medicine", input.MedicineName),
		slog.String("author", authorEmail),
	)
	return insertedID, nil
}

// SetStatus applies a free-form status transition to an existing advertisement.
//
// # No Upsert
//
// The original behavior upserted here, so a typo'd id silently created a
// partial advertisement document. This implementation requires the document
// to exist and surfaces a missing id as NotFound.
func (service *Service) SetStatus(ctx context.Context, id, status string) (*document.WriteResult, error) {
	result, err := service.repository.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, dberr.ErrNotFound
	}

	// The home slider is cached; a transition in or out of the promoted
	// status must not be masked for a full TTL.
	service.cache.Invalidate(ctx, constants.CacheKeyHomeAdverts)

	service.logger.Info("advert_status_updated",
		slog.String("advert_id", id),
		slog.String("status", status),
	)
	return result, nil
}

// ListForHome returns the advertisements selected for the home-page slider,
// served from the catalogue cache when warm.
func (service *Service) ListForHome(ctx context.Context) ([]Advertisement, error) {
	var cached []Advertisement
	if service.cache.GetJSON(ctx, constants.CacheKeyHomeAdverts, &cached) {
		return cached, nil
	}

	promoted, err := service.repository.ListByStatus(ctx, StatusAddToSlide)
	if err != nil {
		return nil, err
	}

	service.cache.SetJSON(ctx, constants.CacheKeyHomeAdverts, promoted, constants.CatalogueCacheTTL)
	return promoted, nil
}

// ListForAuthor returns a seller's own advertisement requests.
func (service *Service) ListForAuthor(ctx context.Context, email string) ([]Advertisement, error) {
	return service.repository.ListByAuthor(ctx, email)
}
