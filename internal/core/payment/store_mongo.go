// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package payment

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/medira/internal/platform/constants"
	"github.com/taibuivan/medira/internal/platform/document"
)

type MongoRepository struct {
	documents *document.Repository[Payment]
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{
		documents: document.NewRepository[Payment](database.Collection(constants.CollectionPayments)),
	}
}

func (repository *MongoRepository) Insert(ctx context.Context, payment Payment) (string, error) {
	return repository.documents.Insert(ctx, payment)
}

func (repository *MongoRepository) List(ctx context.Context, filter interface{}) ([]Payment, error) {
	return repository.documents.List(ctx, filter)
}
