// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/medira/internal/platform/constants"
	"github.com/taibuivan/medira/internal/platform/document"
)

type MongoRepository struct {
	documents *document.Repository[Category]
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{
		documents: document.NewRepository[Category](database.Collection(constants.CollectionCategories)),
	}
}

func (repository *MongoRepository) List(ctx context.Context) ([]Category, error) {
	return repository.documents.List(ctx, nil)
}

func (repository *MongoRepository) Insert(ctx context.Context, category Category) (string, error) {
	return repository.documents.Insert(ctx, category)
}
