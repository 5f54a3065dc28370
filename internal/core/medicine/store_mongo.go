// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package medicine

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/medira/internal/platform/constants"
	"github.com/taibuivan/medira/internal/platform/document"
)

type MongoRepository struct {
	documents *document.Repository[Medicine]
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{
		documents: document.NewRepository[Medicine](database.Collection(constants.CollectionMedicines)),
	}
}

func (repository *MongoRepository) List(ctx context.Context) ([]Medicine, error) {
	return repository.documents.List(ctx, nil)
}

func (repository *MongoRepository) ListByCategory(ctx context.Context, categoryName string) ([]Medicine, error) {
	return repository.documents.List(ctx, bson.M{"category": categoryName})
}

func (repository *MongoRepository) ListByAuthor(ctx context.Context, email string) ([]Medicine, error) {
	return repository.documents.List(ctx, bson.M{"authorEmail": email})
}

func (repository *MongoRepository) GetByID(ctx context.Context, id string) (*Medicine, error) {
	return repository.documents.GetByID(ctx, id)
}

func (repository *MongoRepository) Insert(ctx context.Context, medicine Medicine) (string, error) {
	return repository.documents.Insert(ctx, medicine)
}

func (repository *MongoRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	return repository.documents.DeleteByID(ctx, id)
}
