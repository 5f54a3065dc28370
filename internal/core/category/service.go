// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"log/slog"

	"github.com/taibuivan/medira/internal/platform/cache"
	"github.com/taibuivan/medira/internal/platform/constants"
	"github.com/taibuivan/medira/pkg/slug"
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

// List returns all categories, served from the catalogue cache when warm.
func (service *Service) List(ctx context.Context) ([]Category, error) {
	var cached []Category
	if service.cache.GetJSON(ctx, constants.CacheKeyCategories, &cached) {
		return cached, nil
	}

	categories, err := service.repository.List(ctx)
	if err != nil {
		return nil, err
	}

	service.cache.SetJSON(ctx, constants.CacheKeyCategories, categories, constants.CatalogueCacheTTL)
	return categories, nil
}

// Create inserts a new category with a derived slug and refreshes the cache.
func (service *Service) Create(ctx context.Context, input Category) (string, error) {
	input.Slug = slug.From(input.Name)

	insertedID, err := service.repository.Insert(ctx, input)
	if err != nil {
		return "", err
	}

	service.cache.Invalidate(ctx, constants.CacheKeyCategories)
	service.logger.Info("category_created", slog.String("name", input.Name))
	return insertedID, nil
}
