// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package advert

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/medira/internal/platform/constants"
	"github.com/taibuivan/medira/internal/platform/document"
)

type MongoRepository struct {
	documents *document.Repository[Advertisement]
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{
		documents: document.NewRepository[Advertisement](database.Collection(constants.CollectionAdvertisements)),
	}
}

func (repository *MongoRepository) ListByStatus(ctx context.Context, status string) ([]Advertisement, error) {
	return repository.documents.List(ctx, bson.M{"status": status})
}

func (repository *MongoRepository) ListByAuthor(ctx context.Context, email string) ([]Advertisement, error) {
	return repository.documents.List(ctx, bson.M{"authorEmail": email})
}

func (repository *MongoRepository) Insert(ctx context.Context, advertisement Advertisement) (string, error) {
	return repository.documents.Insert(ctx, advertisement)
}

func (repository *MongoRepository) UpdateStatus(ctx context.Context, id, status string) (*document.WriteResult, error) {
	return repository.documents.UpdateByID(ctx, id, bson.M{"status": status}, false)
}
